package nakama

import (
	"context"
	"database/sql"
	"fmt"

	"broadside/internal/app/onboarding"

	"github.com/form3tech-oss/jwt-go"
	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// AfterAuthenticateDevice onboards accounts created by this authentication:
// a captain display name and the default engine preferences.
func AfterAuthenticateDevice(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, out *api.Session, in *api.AuthenticateDeviceRequest) error {
	if out == nil || !out.Created {
		return nil
	}

	userID, err := sessionUserID(ctx, out)
	if err != nil {
		logger.Error("AfterAuthenticateDevice: Failed to resolve new user: %v", err)
		return err
	}

	result, err := onboarding.NewService(NewNakamaAccountAdapter(nk), nil).OnboardNewUser(ctx, userID)
	if result.ProfileUpdateErr != nil {
		logger.Warn("AfterAuthenticateDevice: Failed to update profile for user %s: %v", userID, result.ProfileUpdateErr)
	}
	if err != nil {
		logger.Error("AfterAuthenticateDevice: Onboarding failed for user %s: %v", userID, err)
		return err
	}
	logger.Info("AfterAuthenticateDevice: User %s joined as %s", userID, result.CaptainName)
	return nil
}

// sessionUserID prefers the runtime context and falls back to the uid claim
// of the freshly issued session token.
func sessionUserID(ctx context.Context, out *api.Session) (string, error) {
	if userID, ok := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string); ok && userID != "" {
		return userID, nil
	}
	return extractUserIDFromToken(out.Token)
}

// extractUserIDFromToken reads the uid claim without verifying the signature;
// the token was minted by the server in this same request.
func extractUserIDFromToken(token string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("failed to parse session token: %w", err)
	}
	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		return "", fmt.Errorf("token claims missing uid")
	}
	return uid, nil
}
