// Command selfplay referees a match between two engines and prints the tally.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"broadside/internal/app"
	"broadside/internal/bot"
	"broadside/internal/config"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const cfgFile = "broadside/engine.yaml"

func main() {
	// A missing .env is fine; flags and defaults still apply.
	_ = godotenv.Load()
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("selfplay", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", os.Getenv("BROADSIDE_CONFIG"), "engine profile yaml (default: XDG broadside/engine.yaml)")
	rounds := fs.Int("rounds", envInt("BROADSIDE_ROUNDS", 100), "rounds to play")
	seed := fs.Int64("seed", 0, "random seed, 0 for time seeded")
	placementA := fs.String("a", config.PlacementLearning, "placement strategy for engine A")
	placementB := fs.String("b", config.PlacementRandom, "placement strategy for engine B")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *rounds <= 0 {
		return fmt.Errorf("rounds must be positive, got %d", *rounds)
	}

	base, err := loadBaseConfig(*configPath)
	if err != nil {
		return err
	}

	l := logrus.New()
	l.SetOutput(stderr)
	l.SetLevel(logrus.WarnLevel)
	if *verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	logger := newLogger(l)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	players := make([]bot.Player, 2)
	for seat, placement := range []string{*placementA, *placementB} {
		cfg := base
		cfg.Placement = placement
		cfg.Seed = *seed + int64(seat) + 1
		e, err := bot.NewEngine(cfg, bot.WithLogger(logger.WithField("seat", seat)))
		if err != nil {
			return fmt.Errorf("engine %c: %w", 'A'+seat, err)
		}
		players[seat] = e
	}

	referee := app.NewService(rand.New(rand.NewSource(*seed)))
	match, err := referee.PlayMatch(players, *rounds, base.BoardSize, app.DefaultFleet)
	if err != nil {
		return err
	}

	turns := 0
	for _, r := range match.Rounds {
		turns += r.Turns
	}
	fmt.Fprintf(stdout, "rounds: %d seed: %d\n", len(match.Rounds), *seed)
	fmt.Fprintf(stdout, "A (%s): %d wins\n", *placementA, match.Wins[app.SeatA])
	fmt.Fprintf(stdout, "B (%s): %d wins\n", *placementB, match.Wins[app.SeatB])
	fmt.Fprintf(stdout, "ties: %d\n", match.Ties)
	fmt.Fprintf(stdout, "average turns: %.1f\n", float64(turns)/float64(len(match.Rounds)))
	return nil
}

// loadBaseConfig reads the profile at path, or the XDG config file when path
// is empty, falling back to the defaults when neither exists.
func loadBaseConfig(path string) (config.EngineConfig, error) {
	if path == "" {
		found, err := xdg.SearchConfigFile(cfgFile)
		if err != nil {
			return config.Default(), nil
		}
		path = found
	}
	return config.ReadEngineConfig(path)
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
