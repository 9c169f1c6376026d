package nakama

import (
	"context"
	"database/sql"

	"broadside/internal/bot"
	"broadside/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule loads the engine profile and captains, then wires RPCs and hooks for the Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	if path := envValue(ctx, envEngineConfig); path != "" {
		if err := config.LoadEngineConfig(path); err != nil {
			logger.Error("InitModule: Failed to load engine config %s: %v", path, err)
			return err
		}
	}
	cfg := config.GetEngineConfig()
	logger.Info("InitModule: Engine profile placement=%s scan=%s board=%d", cfg.Placement, cfg.Scan, cfg.BoardSize)

	sessionTokens(ctx, logger)

	if path := envValue(ctx, envCaptains); path != "" {
		if err := bot.LoadIdentities(path); err != nil {
			logger.Error("InitModule: Failed to load captains: %v", err)
			return err
		}
		if err := bot.ProvisionCaptains(ctx, NewNakamaAccountAdapter(nk), logger); err != nil {
			logger.Warn("InitModule: Captains unavailable: %v", err)
		}
	}

	if err := RegisterRPCs(initializer); err != nil {
		return err
	}
	if err := initializer.RegisterAfterAuthenticateDevice(AfterAuthenticateDevice); err != nil {
		return err
	}

	logger.Info("Broadside Go module loaded.")
	return nil
}
