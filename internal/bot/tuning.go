package bot

import botinternal "broadside/internal/bot/internal"

// DefaultTuning mirrors the constants the engine was calibrated with.
var DefaultTuning = botinternal.EngineTuning{
	RandomPlacementAttempts: 10000,
	LowPlacementAttempts:    50,
	LearningShotBonus:       10,
	LearningShotAttempts:    10,
	LearningShotMinRounds:   2,
	PoisonWeight:            9999999,
}
