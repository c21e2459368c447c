package risk

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type AnalyzeSuite struct {
	suite.Suite
	table *ReferenceTable
	at    time.Time
}

func TestAnalyzeSuite(t *testing.T) {
	suite.Run(t, new(AnalyzeSuite))
}

func (s *AnalyzeSuite) SetupTest() {
	s.table = DefaultTable()
	s.at = time.Date(2024, 1, 16, 14, 1, 0, 0, time.UTC)
}

func (s *AnalyzeSuite) TestScenarios() {
	s.Run("smartphone below band minimum is high risk", func() {
		got := Analyze([]Item{{Description: "Smartphone", UnitPrice: 120, HSCode: "8517.12"}}, s.table, s.at)

		s.Equal(LevelHigh, got.RiskLevel)
		s.InDelta(-82.857, got.DeviationPercent, 0.001)
		s.Contains(got.Explanation, "-82.9%")
		s.Contains(got.Explanation, "Smartphone")
		s.Equal(s.at, got.AnalyzedAt)
	})

	s.Run("laptop near average is low risk", func() {
		got := Analyze([]Item{{Description: "Laptop", UnitPrice: 580, HSCode: "8471.30"}}, s.table, s.at)

		s.Equal(LevelLow, got.RiskLevel)
		s.InDelta(-7.2, got.DeviationPercent, 0.0001)
		s.Contains(got.Explanation, "-7.2%")
	})

	s.Run("unmatched items do not contribute", func() {
		got := Analyze([]Item{
			{Description: "Laptop", UnitPrice: 580, HSCode: "8471.30"},
			{Description: "Coffee", UnitPrice: 1, HSCode: "0901.21"},
		}, s.table, s.at)

		s.Equal(LevelLow, got.RiskLevel)
		s.InDelta(-7.2, got.DeviationPercent, 0.0001)
	})

	s.Run("no matched items degrades to low with zero deviation", func() {
		got := Analyze([]Item{{Description: "Coffee", UnitPrice: 1, HSCode: "0901.21"}}, s.table, s.at)

		s.Equal(LevelLow, got.RiskLevel)
		s.Zero(got.DeviationPercent)
	})

	s.Run("empty item list is not an error", func() {
		got := Analyze(nil, s.table, s.at)
		s.Equal(LevelLow, got.RiskLevel)
	})

	s.Run("overpricing above thirty percent is medium", func() {
		// (900-625)/625 = +44%
		got := Analyze([]Item{{Description: "Laptop", UnitPrice: 900, HSCode: "8471.30"}}, s.table, s.at)
		s.Equal(LevelMedium, got.RiskLevel)
		s.Contains(got.Explanation, "44.0%")
	})

	s.Run("moderate underpricing within band is medium", func() {
		// (500-625)/625 = -20%, still above min 450
		got := Analyze([]Item{{Description: "Laptop", UnitPrice: 500, HSCode: "8471.30"}}, s.table, s.at)
		s.Equal(LevelMedium, got.RiskLevel)
	})

	s.Run("average below minus thirty is high without item below min", func() {
		// Footwear (30-85)/85 = -64.7% but 30 >= min 25
		got := Analyze([]Item{{Description: "Shoes", UnitPrice: 30, HSCode: "6403.99"}}, s.table, s.at)
		s.Equal(LevelHigh, got.RiskLevel)
		s.NotContains(got.Explanation, "Items priced below")
	})

	s.Run("nil table falls back to defaults", func() {
		got := Analyze([]Item{{Description: "Smartphone", UnitPrice: 120, HSCode: "8517.12"}}, nil, s.at)
		s.Equal(LevelHigh, got.RiskLevel)
	})
}

// Justification: classification must be a total function of the two inputs,
// so sweep a grid rather than rely on a handful of examples.
func (s *AnalyzeSuite) TestClassifyIsTotal() {
	for dev := -100.0; dev <= 100.0; dev += 0.5 {
		for _, below := range []bool{false, true} {
			got := Classify(dev, below)
			var want Level
			switch {
			case dev < -30 || below:
				want = LevelHigh
			case dev < -15 || dev > 30:
				want = LevelMedium
			default:
				want = LevelLow
			}
			s.Equal(want, got, "dev=%v below=%v", dev, below)
		}
	}
}

func (s *AnalyzeSuite) TestClassifyBoundaries() {
	s.Equal(LevelMedium, Classify(-30, false), "-30 is not strictly below -30")
	s.Equal(LevelLow, Classify(-15, false))
	s.Equal(LevelLow, Classify(30, false))
	s.Equal(LevelMedium, Classify(math.Nextafter(30, 31), false))
}

func TestLevelIsValid(t *testing.T) {
	assert.True(t, LevelHigh.IsValid())
	assert.False(t, Level("CRITICAL").IsValid())
}
