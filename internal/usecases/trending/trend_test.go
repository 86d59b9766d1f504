package trending

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/visibly/ai-visibility-api/internal/domain"
)

func seriesWithScores(scores ...float64) []*domain.TimeSeriesData {
	series := make([]*domain.TimeSeriesData, 0, len(scores))
	for _, score := range scores {
		series = append(series, &domain.TimeSeriesData{
			BrandID:         "b1",
			VisibilityScore: score,
		})
	}
	return series
}

func TestWeekOverWeek(t *testing.T) {
	tests := []struct {
		name          string
		scores        []float64
		wantChange    float64
		wantDirection string
	}{
		{
			name:          "score going up",
			scores:        []float64{50, 51, 52, 53, 54, 55, 56, 60},
			wantChange:    20.0,
			wantDirection: "up",
		},
		{
			name:          "score going down",
			scores:        []float64{80, 78, 76, 74, 72, 70, 68, 60},
			wantChange:    -25.0,
			wantDirection: "down",
		},
		{
			name:          "no movement",
			scores:        []float64{40, 41, 42, 43, 44, 45, 46, 40},
			wantChange:    0.0,
			wantDirection: "flat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trend := WeekOverWeek(seriesWithScores(tt.scores...))
			require.NotNil(t, trend)

			assert.Equal(t, "b1", trend.BrandID)
			assert.Equal(t, tt.scores[len(tt.scores)-1], trend.CurrentScore)
			assert.Equal(t, tt.scores[0], trend.PreviousScore)
			assert.InDelta(t, tt.wantChange, trend.ChangePercent, 0.001)
			assert.Equal(t, tt.wantDirection, trend.Direction)
		})
	}
}

func TestWeekOverWeek_ShortSeries(t *testing.T) {
	assert.Nil(t, WeekOverWeek(nil))
	assert.Nil(t, WeekOverWeek(seriesWithScores(10, 20, 30)))
	assert.Nil(t, WeekOverWeek(seriesWithScores(1, 2, 3, 4, 5, 6, 7)))
}

func TestWeekOverWeek_ZeroPreviousScore(t *testing.T) {
	// division by a zero previous score is left unguarded on purpose
	trend := WeekOverWeek(seriesWithScores(0, 1, 2, 3, 4, 5, 6, 50))
	require.NotNil(t, trend)
	assert.True(t, math.IsInf(trend.ChangePercent, 1))
	assert.Equal(t, "up", trend.Direction)
}
