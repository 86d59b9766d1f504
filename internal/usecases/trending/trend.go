// Package trending derives week-over-week movement from visibility
// time series.
package trending

import (
	"github.com/visibly/ai-visibility-api/internal/domain"
	"github.com/visibly/ai-visibility-api/pkg/utils"
)

const weekOffset = 8

// Trend summarizes how a brand's visibility moved over the last week.
type Trend struct {
	BrandID       string  `json:"brand_id"`
	CurrentScore  float64 `json:"current_score"`
	PreviousScore float64 `json:"previous_score"`
	ChangePercent float64 `json:"change_percent"`
	Direction     string  `json:"direction"`
}

// WeekOverWeek compares the latest point against the point one week
// earlier. The series must be ordered oldest first. A nil result means
// the series is too short to compare.
func WeekOverWeek(series []*domain.TimeSeriesData) *Trend {
	if len(series) < weekOffset {
		return nil
	}

	current := series[len(series)-1]
	previous := series[len(series)-weekOffset]

	change := (current.VisibilityScore - previous.VisibilityScore) / previous.VisibilityScore * 100

	return &Trend{
		BrandID:       current.BrandID,
		CurrentScore:  current.VisibilityScore,
		PreviousScore: previous.VisibilityScore,
		ChangePercent: utils.RoundWithTwoDecimalPlace(change),
		Direction:     direction(change),
	}
}

func direction(change float64) string {
	switch {
	case change > 0:
		return "up"
	case change < 0:
		return "down"
	default:
		return "flat"
	}
}
