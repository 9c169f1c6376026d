package app

import (
	"sync"
	"testing"

	"broadside/internal/bot"
	"broadside/internal/config"
	"broadside/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRegistryLifecycle(t *testing.T) {
	r := NewSessionRegistry(2)

	s, err := r.Create("u1", config.Default())
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, 1, r.Len())

	got, err := r.Get(s.ID, "u1")
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = r.Get(s.ID, "u2")
	assert.ErrorIs(t, err, ErrNotOwner)
	_, err = r.Get("not-a-uuid", "u1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.ErrorIs(t, r.Close(s.ID, "u2"), ErrNotOwner)
	require.NoError(t, r.Close(s.ID, "u1"))
	assert.ErrorIs(t, r.Close(s.ID, "u1"), ErrSessionNotFound)
	assert.Equal(t, 0, r.Len())
}

func TestSessionRegistryLimitsPerUser(t *testing.T) {
	r := NewSessionRegistry(1)
	_, err := r.Create("u1", config.Default())
	require.NoError(t, err)
	_, err = r.Create("u1", config.Default())
	assert.ErrorIs(t, err, ErrSessionLimit)
	_, err = r.Create("u2", config.Default())
	assert.NoError(t, err)
}

func TestSessionRegistryRejectsBadConfig(t *testing.T) {
	r := NewSessionRegistry(0)
	cfg := config.Default()
	cfg.Scan = "spiral"
	_, err := r.Create("u1", cfg)
	assert.Error(t, err)
	_, err = r.Create("", config.Default())
	assert.Error(t, err)
}

func TestSessionDoSerialisesAccess(t *testing.T) {
	r := NewSessionRegistry(0)
	s, err := r.Create("u1", config.Default())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Do(func(e *bot.Engine) error {
				c, err := e.GetMove()
				if err != nil {
					return err
				}
				return e.Update(domain.Outcome{Kind: domain.OutcomeMiss, Coord: c})
			})
		}()
	}
	wg.Wait()

	err = s.Do(func(e *bot.Engine) error {
		assert.Len(t, e.Memory().Shots, 8)
		return nil
	})
	require.NoError(t, err)
}
