package nakama

import (
	"context"

	"broadside/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// NakamaAccountAdapter implements ports.AccountPort using Nakama's account API.
type NakamaAccountAdapter struct {
	nk runtime.NakamaModule
}

// NewNakamaAccountAdapter creates a new account adapter.
func NewNakamaAccountAdapter(nk runtime.NakamaModule) *NakamaAccountAdapter {
	return &NakamaAccountAdapter{nk: nk}
}

// AuthenticateDevice creates the device account if needed.
func (a *NakamaAccountAdapter) AuthenticateDevice(ctx context.Context, deviceID, username string) (string, string, error) {
	userID, assigned, _, err := a.nk.AuthenticateDevice(ctx, deviceID, username, true)
	return userID, assigned, err
}

// UpdateProfile updates the account username and display name in Nakama.
// userID identifies the account to update; username/displayName are applied as provided.
// Returns an error if the Nakama update fails.
func (a *NakamaAccountAdapter) UpdateProfile(ctx context.Context, userID, username, displayName string) error {
	return a.nk.AccountUpdateId(ctx, userID, username, nil, displayName, "", "", "", "")
}

// UpdateMetadata writes account metadata, leaving other profile fields untouched.
func (a *NakamaAccountAdapter) UpdateMetadata(ctx context.Context, userID string, metadata map[string]interface{}) error {
	return a.nk.AccountUpdateId(ctx, userID, "", metadata, "", "", "", "", "")
}

var _ ports.AccountPort = (*NakamaAccountAdapter)(nil)
