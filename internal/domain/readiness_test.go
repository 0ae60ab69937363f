package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightedScore(t *testing.T) {
	score := 4.0
	weight := 0.25

	assert.Equal(t, 1.0, (&ReadinessRow{QuestionScore: &score, QuestionCategoryWeight: &weight}).WeightedScore())
	assert.Zero(t, (&ReadinessRow{QuestionScore: &score}).WeightedScore())
	assert.Zero(t, (&ReadinessRow{QuestionCategoryWeight: &weight}).WeightedScore())
	assert.Zero(t, (&ReadinessRow{}).WeightedScore())
}
