package logger_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cemeheeb/zifretta-raffle-engine/internal/logger"
)

func TestInitialize_FilesAndConsole(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "raffle.log")
	errorFile := filepath.Join(dir, "raffle.err")
	var console bytes.Buffer

	require.NoError(t, logger.Initialize(logger.Configuration{
		LogFile:   logFile,
		ErrorFile: errorFile,
		Level:     "info",
		Console:   true,
		Output:    &console,
	}))
	t.Cleanup(func() {
		require.NoError(t, logger.Initialize(logger.Configuration{}))
	})

	logger.Debug("hidden")
	logger.Info("ticket bought", zap.Uint32("ticket", 3))
	logger.Error("payout failed")
	logger.Sync()

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "ticket bought", entry["message"])
	require.Equal(t, "info", entry["level"])
	require.EqualValues(t, 3, entry["ticket"])

	data, err = os.ReadFile(errorFile)
	require.NoError(t, err)
	require.Contains(t, string(data), "payout failed")
	require.NotContains(t, string(data), "ticket bought")

	require.Contains(t, console.String(), "ticket bought")
	require.NotContains(t, console.String(), "hidden")
}

func TestInitialize_UnwritableFile(t *testing.T) {
	err := logger.Initialize(logger.Configuration{
		LogFile: filepath.Join(t.TempDir(), "missing", "raffle.log"),
	})
	require.Error(t, err)
}
