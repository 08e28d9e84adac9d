package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyVoxelRules(t *testing.T) {
	t.Parallel()

	for score := 0; score <= 26; score++ {
		assert.Equal(t, score == 9, ApplyVoxelRules(score, true), "alive with %d", score)
		assert.Equal(t, score == 4, ApplyVoxelRules(score, false), "dead with %d", score)
	}

	// Conway's thresholds do not apply here
	assert.False(t, ApplyVoxelRules(2, true))
	assert.False(t, ApplyVoxelRules(3, true))
	assert.False(t, ApplyVoxelRules(3, false))
}
