package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"broadside/internal/config"
	"broadside/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// CaptainIdentity is a named engine profile that can be provisioned as a
// server-side account and challenged by players.
type CaptainIdentity struct {
	DeviceID    string `json:"device_id"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Placement   string `json:"placement"` // "random", "low", "edge", "learning"
	Scan        string `json:"scan"`      // "density", "sweep"
	MiddleSweep bool   `json:"middle_sweep"`
	AvatarIndex int    `json:"avatar_index"`
}

// EngineConfig overlays the captain's strategy choices on a base profile.
func (c CaptainIdentity) EngineConfig(base config.EngineConfig) config.EngineConfig {
	if c.Placement != "" {
		base.Placement = c.Placement
	}
	if c.Scan != "" {
		base.Scan = c.Scan
	}
	if c.MiddleSweep {
		base.MiddleSweep = true
	}
	return base
}

var (
	captains      []CaptainIdentity
	captainByName map[string]CaptainIdentity
	captainByID   map[string]CaptainIdentity
	captainsMu    sync.RWMutex
	loadOnce      sync.Once
	provisionOnce sync.Once
	loadErr       error
)

// LoadIdentities loads the captain profiles from the given path.
func LoadIdentities(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read captain identities: %w", err)
			return
		}
		loadErr = SetIdentities(data)
	})
	return loadErr
}

// SetIdentities replaces the captain pool from raw JSON.
func SetIdentities(data []byte) error {
	var list []CaptainIdentity
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("failed to unmarshal captain identities: %w", err)
	}
	base := config.Default()
	for _, c := range list {
		if c.Username == "" {
			return fmt.Errorf("captain identity missing username")
		}
		if err := c.EngineConfig(base).Validate(); err != nil {
			return fmt.Errorf("captain %s: %w", c.Username, err)
		}
	}

	captainsMu.Lock()
	defer captainsMu.Unlock()
	captains = list
	captainByName = make(map[string]CaptainIdentity)
	captainByID = make(map[string]CaptainIdentity)
	for _, c := range captains {
		mapIdentity(c)
	}
	return nil
}

func mapIdentity(c CaptainIdentity) {
	captainByName[c.Username] = c
	if c.UserID != "" {
		captainByID[c.UserID] = c
	}
}

// ProvisionCaptains ensures that captain accounts exist and carry their profile
// metadata. It fails only when every captain with a device ID failed to authenticate.
func ProvisionCaptains(ctx context.Context, accounts ports.AccountPort, logger runtime.Logger) error {
	var err error
	provisionOnce.Do(func() {
		ready, failed := 0, 0
		captainsMu.Lock()
		defer captainsMu.Unlock()
		for i := range captains {
			identity := &captains[i]
			if identity.DeviceID == "" {
				continue
			}

			userID, username, authErr := accounts.AuthenticateDevice(ctx, identity.DeviceID, identity.Username)
			if authErr != nil {
				logger.Error("ProvisionCaptains: Failed to authenticate captain %s: %v", identity.Username, authErr)
				failed++
				continue
			}
			identity.UserID = userID
			identity.Username = username

			if updErr := accounts.UpdateProfile(ctx, userID, identity.Username, identity.DisplayName); updErr != nil {
				logger.Warn("ProvisionCaptains: Failed to update captain profile %s: %v", userID, updErr)
			}
			metadata := map[string]interface{}{
				"is_captain":   true,
				"placement":    identity.Placement,
				"scan":         identity.Scan,
				"avatar_index": identity.AvatarIndex,
			}
			if updErr := accounts.UpdateMetadata(ctx, userID, metadata); updErr != nil {
				logger.Warn("ProvisionCaptains: Failed to update captain metadata %s: %v", userID, updErr)
			}

			mapIdentity(*identity)
			ready++
			logger.Info("ProvisionCaptains: Captain %s (%s) is ready. Placement: %s", identity.DisplayName, userID, identity.Placement)
		}
		if failed > 0 && ready == 0 {
			err = fmt.Errorf("no captains provisioned, %d failed", failed)
		}
	})
	return err
}

// GetCaptain returns the captain registered under a username.
func GetCaptain(username string) (CaptainIdentity, bool) {
	captainsMu.RLock()
	defer captainsMu.RUnlock()
	c, ok := captainByName[username]
	return c, ok
}

// GetCaptainByID returns the captain provisioned with the given user ID.
func GetCaptainByID(userID string) (CaptainIdentity, bool) {
	captainsMu.RLock()
	defer captainsMu.RUnlock()
	c, ok := captainByID[userID]
	return c, ok
}

// Captains returns a copy of the captain pool.
func Captains() []CaptainIdentity {
	captainsMu.RLock()
	defer captainsMu.RUnlock()
	out := make([]CaptainIdentity, len(captains))
	copy(out, captains)
	return out
}
