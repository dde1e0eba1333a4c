package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnowflakeGenerator_Unique(t *testing.T) {
	gen, err := NewIDGenerator(1)
	require.NoError(t, err)

	seen := make(map[int64]struct{})
	prev := int64(0)
	for i := 0; i < 5000; i++ {
		id := gen.NextID()
		_, dup := seen[id]
		assert.False(t, dup)
		assert.Greater(t, id, prev)
		seen[id] = struct{}{}
		prev = id
	}
}

func TestNewIDGenerator_InvalidNode(t *testing.T) {
	_, err := NewIDGenerator(-1)
	assert.Error(t, err)
	_, err = NewIDGenerator(MaxNodeID + 1)
	assert.Error(t, err)
}

func TestSnowflakeGenerator_JSONSafe(t *testing.T) {
	gen, err := NewIDGenerator(MaxNodeID)
	require.NoError(t, err)

	for i := 0; i < 500; i++ {
		id := gen.NextID()
		require.LessOrEqual(t, id, int64(MaxSafeID))

		data, err := json.Marshal(map[string]int64{"id": id})
		require.NoError(t, err)
		var decoded map[string]float64
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, id, int64(decoded["id"]))
	}
}

func TestSequenceGenerator(t *testing.T) {
	gen := NewSequenceGenerator(100)
	assert.Equal(t, int64(100), gen.NextID())
	assert.Equal(t, int64(101), gen.NextID())
}
