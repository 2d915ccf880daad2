package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidRating(t *testing.T) {
	assert.True(t, ValidRating(1))
	assert.True(t, ValidRating(3))
	assert.True(t, ValidRating(5))
	assert.False(t, ValidRating(0))
	assert.False(t, ValidRating(6))
	assert.False(t, ValidRating(-1))
}

func TestAggregateRating_EmptySet(t *testing.T) {
	rating := AggregateRating(nil)

	assert.False(t, rating.HasRatings)
	assert.Equal(t, 0, rating.Count)
	assert.Equal(t, 0.0, rating.Average)
}

func TestAggregateRating_Mean(t *testing.T) {
	reviews := []*Review{
		{Rating: 5},
		{Rating: 1},
	}

	rating := AggregateRating(reviews)
	assert.True(t, rating.HasRatings)
	assert.Equal(t, 2, rating.Count)
	assert.Equal(t, 3.0, rating.Average)
}

func TestAggregateRating_RoundsToOneDecimal(t *testing.T) {
	reviews := []*Review{
		{Rating: 5},
		{Rating: 5},
		{Rating: 4},
	}

	// 14/3 = 4.666... rounds to 4.7.
	rating := AggregateRating(reviews)
	assert.Equal(t, 4.7, rating.Average)
	assert.Equal(t, 3, rating.Count)
}
