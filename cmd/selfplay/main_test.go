package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPrintsTally(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run([]string{"-rounds", "3", "-seed", "42", "-a", "edge", "-b", "low"}, &out, &errOut)
	require.NoError(t, err, errOut.String())

	s := out.String()
	assert.Contains(t, s, "rounds: 3 seed: 42")
	assert.Contains(t, s, "A (edge):")
	assert.Contains(t, s, "B (low):")
	assert.Contains(t, s, "average turns:")
}

func TestRunRejectsBadInput(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.Error(t, run([]string{"-rounds", "0"}, &out, &errOut))
	assert.Error(t, run([]string{"-a", "corners", "-rounds", "1"}, &out, &errOut))
	assert.Error(t, run([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, &out, &errOut))
}

func TestRunReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scan: sweep\nmiddle_sweep: true\n"), 0o600))

	var out, errOut bytes.Buffer
	require.NoError(t, run([]string{"-config", path, "-rounds", "2", "-seed", "5"}, &out, &errOut), errOut.String())
	assert.Contains(t, out.String(), "rounds: 2")
}

func TestLogrusLoggerCarriesFields(t *testing.T) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	logger := newLogger(l).WithField("seat", 1).WithFields(map[string]interface{}{"round": 2})

	logger.Info("round %d started", 2)
	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, "round 2 started", entry.Message)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, 1, entry.Data["seat"])
	assert.Equal(t, 2, logger.Fields()["round"])

	logger.Debug("hunting")
	logger.Warn("fallback")
	logger.Error("failed")
	assert.Len(t, hook.Entries, 4)
}
