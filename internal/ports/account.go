package ports

import "context"

// AccountPort defines the interface for creating and updating player accounts.
type AccountPort interface {
	// AuthenticateDevice finds or creates the account bound to a device ID.
	// Returns the account's user ID and the username actually assigned.
	AuthenticateDevice(ctx context.Context, deviceID, username string) (userID, assignedUsername string, err error)

	// UpdateProfile updates account profile fields for the given user.
	// userID identifies the account to update; username/displayName are applied as provided.
	// Returns an error if the profile update fails.
	UpdateProfile(ctx context.Context, userID, username, displayName string) error

	// UpdateMetadata replaces the account metadata for the given user.
	UpdateMetadata(ctx context.Context, userID string, metadata map[string]interface{}) error
}
