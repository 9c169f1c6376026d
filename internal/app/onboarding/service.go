package onboarding

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"broadside/internal/config"
	"broadside/internal/ports"
)

// Result captures non-fatal onboarding outcomes.
type Result struct {
	// CaptainName is the display name assigned to the new account.
	CaptainName string
	// ProfileUpdateErr is set when the profile update failed but onboarding continued.
	ProfileUpdateErr error
}

// Service handles post-auth onboarding for new users.
type Service struct {
	accounts ports.AccountPort
	rng      *rand.Rand
}

// NewService constructs an onboarding service.
// accounts must be non-nil; rng may be nil to use a time-seeded default.
func NewService(accounts ports.AccountPort, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		accounts: accounts,
		rng:      rng,
	}
}

// OnboardNewUser gives a newly created account a captain name and the
// default engine preferences.
// Returns a Result with any non-fatal issues and an error if the metadata cannot be written.
// Side effects: updates account profile and metadata.
func (s *Service) OnboardNewUser(ctx context.Context, userID string) (Result, error) {
	if s.accounts == nil {
		return Result{}, fmt.Errorf("onboarding service not configured")
	}

	result := Result{CaptainName: s.generateCaptainName()}
	if err := s.accounts.UpdateProfile(ctx, userID, "", result.CaptainName); err != nil {
		// Profile updates are best-effort; preferences drive engine creation.
		result.ProfileUpdateErr = err
	}

	defaults := config.Default()
	metadata := map[string]interface{}{
		"placement":  defaults.Placement,
		"scan":       defaults.Scan,
		"board_size": defaults.BoardSize,
	}
	if err := s.accounts.UpdateMetadata(ctx, userID, metadata); err != nil {
		return result, fmt.Errorf("failed to store engine preferences: %w", err)
	}

	return result, nil
}

func (s *Service) generateCaptainName() string {
	ranks := []string{"Captain", "Commander", "Admiral", "Skipper", "Bosun"}
	nouns := []string{"Gull", "Marlin", "Kraken", "Anchor", "Tide", "Reef", "Squall", "Narwhal", "Harpoon", "Current"}

	rank := ranks[s.rng.Intn(len(ranks))]
	noun := nouns[s.rng.Intn(len(nouns))]
	num := s.rng.Intn(9000) + 1000

	return fmt.Sprintf("%s%s%d", rank, noun, num)
}
