package logger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/rickicode/mikrotik-billing/internal/logger"
)

func Test_SetLogLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	require.NoError(t, logger.SetLogLevel("DEBUG"))
	require.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	require.NoError(t, logger.SetLogLevel(""))
	require.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	require.Error(t, logger.SetLogLevel("loud"))
}
