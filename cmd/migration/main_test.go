package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/sports-analytics/internal/platform/logging"
)

func TestParseSteps(t *testing.T) {
	steps, err := parseSteps(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, steps)

	steps, err = parseSteps([]string{" 3 "})
	require.NoError(t, err)
	assert.Equal(t, 3, steps)

	_, err = parseSteps([]string{"0"})
	assert.Error(t, err)

	_, err = parseSteps([]string{"two"})
	assert.Error(t, err)
}

func TestParseVersion(t *testing.T) {
	v, err := parseVersion("20250801000001")
	require.NoError(t, err)
	assert.Equal(t, 20250801000001, v)

	v, err = parseVersion("-1")
	require.NoError(t, err)
	assert.Equal(t, -1, v)

	_, err = parseVersion("-2")
	assert.Error(t, err)
}

func TestParseTarget(t *testing.T) {
	v, err := parseTarget("2")
	require.NoError(t, err)
	assert.Equal(t, uint(2), v)

	_, err = parseTarget("-1")
	assert.Error(t, err)
}

func TestRun_RequiresCommandAndDBURL(t *testing.T) {
	err := run(nil, logging.NewNop())
	assert.True(t, errors.Is(err, errUsage))

	t.Setenv("DB_URL", "")
	err = run([]string{"up"}, logging.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_URL")
}

func TestNormalizeDBURL(t *testing.T) {
	got := normalizeDBURL("postgres://u:p@localhost:5432/sports_analytics?sslmode=disable", true)
	assert.Contains(t, got, "disable_prepared_binary_result=yes")

	in := "postgres://u:p@localhost:5432/sports_analytics"
	assert.Equal(t, in, normalizeDBURL(in, false))
}
