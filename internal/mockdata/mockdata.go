// Package mockdata is an in-memory stand-in for the visibility backend,
// used by demos and frontend development when no database is available.
package mockdata

import (
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/visibly/ai-visibility-api/pkg/utils"
)

const sparklineLength = 7

// TimeSeriesPoint is a synthetic daily visibility sample.
type TimeSeriesPoint struct {
	Date           string  `json:"date"`
	Score          float64 `json:"score"`
	Mentions       float64 `json:"mentions"`
	PromptCoverage float64 `json:"prompt_coverage"`
}

// GenerateSparkline produces seven scores around base, mixing a
// sinusoidal trend with uniform noise scaled by variance. Every value
// stays within [0, 100].
func GenerateSparkline(r *rand.Rand, base, variance float64) []float64 {
	points := make([]float64, 0, sparklineLength)
	for i := 0; i < sparklineLength; i++ {
		trend := math.Sin(float64(i)*0.9) * variance * 0.5
		noise := (r.Float64()*2 - 1) * variance
		score := utils.Clamp(base+trend+noise, 0, 100)
		points = append(points, utils.RoundWithOneDecimalPlace(score))
	}
	return points
}

// GenerateTimeSeries produces days consecutive daily points ending today,
// oldest first. Mentions and prompt coverage are noisy linear transforms
// of the score, rounded to one decimal like the score itself.
func GenerateTimeSeries(r *rand.Rand, days int, baseScore float64) []TimeSeriesPoint {
	today := time.Now()
	start := today.AddDate(0, 0, -(days - 1))

	points := make([]TimeSeriesPoint, 0, days)
	for i := 0; i < days; i++ {
		trend := math.Sin(float64(i)/5) * 10
		noise := (r.Float64()*2 - 1) * 5
		score := utils.Clamp(baseScore+trend+noise, 0, 100)

		mentions := score*1.2 + r.Float64()*10
		coverage := utils.Clamp(score*0.9+(r.Float64()*2-1)*5, 0, 100)

		points = append(points, TimeSeriesPoint{
			Date:           start.AddDate(0, 0, i).Format("2006-01-02"),
			Score:          utils.RoundWithOneDecimalPlace(score),
			Mentions:       utils.RoundWithOneDecimalPlace(mentions),
			PromptCoverage: utils.RoundWithOneDecimalPlace(coverage),
		})
	}

	return points
}

// CategoryByID returns the seeded category with the given ID, or nil.
func CategoryByID(id string) *Category {
	for i := range Categories {
		if Categories[i].ID == id {
			return &Categories[i]
		}
	}
	return nil
}

// BrandByID returns the seeded brand with the given ID, or nil.
func BrandByID(id string) *Brand {
	for i := range Brands {
		if Brands[i].ID == id {
			return &Brands[i]
		}
	}
	return nil
}

// BrandsByCategory returns every seeded brand in a category, in seed order.
func BrandsByCategory(categoryID string) []Brand {
	brands := make([]Brand, 0)
	for _, brand := range Brands {
		if brand.CategoryID == categoryID {
			brands = append(brands, brand)
		}
	}
	return brands
}

// TopBrands returns the n highest scoring brands. The sort is stable so
// ties keep their seed order.
func TopBrands(n int) []Brand {
	brands := make([]Brand, len(Brands))
	copy(brands, Brands)

	sort.SliceStable(brands, func(i, j int) bool {
		return brands[i].VisibilityScore > brands[j].VisibilityScore
	})

	if n > len(brands) {
		n = len(brands)
	}
	return brands[:n]
}

// SearchCategories matches categories whose name or description contains
// the query, case-insensitively.
func SearchCategories(query string) []Category {
	q := strings.ToLower(query)

	matches := make([]Category, 0)
	for _, category := range Categories {
		if strings.Contains(strings.ToLower(category.Name), q) ||
			strings.Contains(strings.ToLower(category.Description), q) {
			matches = append(matches, category)
		}
	}
	return matches
}
