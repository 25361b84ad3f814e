package thinking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wardfs/wardfs/internal/infrastructure/logging"
)

func newTestProvider() *Provider {
	return NewProvider(&logging.Logger{Logger: zap.NewNop()})
}

func record(t *testing.T, p *Provider, params map[string]interface{}) map[string]interface{} {
	t.Helper()
	result, err := p.Execute(context.Background(), "thinking.sequential", params, nil)
	require.NoError(t, err)
	require.True(t, result.Success, "sequential failed: %v", result.Error)
	return result.Data
}

func TestSequentialRecordsHistory(t *testing.T) {
	p := newTestProvider()

	data := record(t, p, map[string]interface{}{
		"thought":           "first step",
		"thoughtNumber":     1,
		"totalThoughts":     3,
		"nextThoughtNeeded": true,
	})
	assert.Equal(t, 1, data["thoughtNumber"])
	assert.Equal(t, 3, data["totalThoughts"])
	assert.Equal(t, true, data["nextThoughtNeeded"])
	assert.Equal(t, 1, data["thoughtHistoryLength"])

	data = record(t, p, map[string]interface{}{
		"thought":           "second step",
		"thoughtNumber":     2,
		"totalThoughts":     3,
		"nextThoughtNeeded": false,
	})
	assert.Equal(t, 2, data["thoughtHistoryLength"])
}

func TestSequentialRaisesTotalToNumber(t *testing.T) {
	p := newTestProvider()

	data := record(t, p, map[string]interface{}{
		"thought":           "ran past the estimate",
		"thoughtNumber":     5,
		"totalThoughts":     3,
		"nextThoughtNeeded": true,
	})
	assert.Equal(t, 5, data["totalThoughts"])
}

func TestSequentialTracksBranches(t *testing.T) {
	p := newTestProvider()

	record(t, p, map[string]interface{}{
		"thought":           "main line",
		"thoughtNumber":     1,
		"totalThoughts":     2,
		"nextThoughtNeeded": true,
	})
	data := record(t, p, map[string]interface{}{
		"thought":           "alternative",
		"thoughtNumber":     2,
		"totalThoughts":     2,
		"nextThoughtNeeded": false,
		"branchFromThought": 1,
		"branchId":          "alt-1",
	})
	assert.Equal(t, []string{"alt-1"}, data["branches"])
}

func TestSequentialAcceptsJSONNumbers(t *testing.T) {
	p := newTestProvider()

	data := record(t, p, map[string]interface{}{
		"thought":           "decoded from JSON",
		"thoughtNumber":     float64(1),
		"totalThoughts":     float64(1),
		"nextThoughtNeeded": false,
	})
	assert.Equal(t, 1, data["thoughtNumber"])
}

func TestSequentialValidation(t *testing.T) {
	p := newTestProvider()

	cases := []map[string]interface{}{
		{"thoughtNumber": 1, "totalThoughts": 1, "nextThoughtNeeded": false},
		{"thought": "", "thoughtNumber": 1, "totalThoughts": 1, "nextThoughtNeeded": false},
		{"thought": "x", "thoughtNumber": 0, "totalThoughts": 1, "nextThoughtNeeded": false},
		{"thought": "x", "thoughtNumber": 1, "totalThoughts": 0, "nextThoughtNeeded": false},
		{"thought": "x", "thoughtNumber": 1, "totalThoughts": 1},
	}
	for _, params := range cases {
		result, err := p.Execute(context.Background(), "thinking.sequential", params, nil)
		require.NoError(t, err)
		assert.False(t, result.Success, "expected validation failure for %v", params)
	}
}

func TestUnknownTool(t *testing.T) {
	p := newTestProvider()

	result, err := p.Execute(context.Background(), "thinking.parallel", nil, nil)
	require.NoError(t, err)
	assert.False(t, result.Success)
}
