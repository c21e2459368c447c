// Package risk implements the rule-based price analysis run on commercial invoices.
package risk

import (
	"fmt"
	"strings"
	"time"
)

// Level classifies an invoice's pricing risk.
type Level string

const (
	LevelLow    Level = "LOW"
	LevelMedium Level = "MEDIUM"
	LevelHigh   Level = "HIGH"
)

// IsValid reports whether l is a known level.
func (l Level) IsValid() bool {
	switch l {
	case LevelLow, LevelMedium, LevelHigh:
		return true
	}
	return false
}

// Classification thresholds on the average deviation percentage.
const (
	highDeviationFloor   = -30.0
	mediumDeviationFloor = -15.0
	mediumDeviationCeil  = 30.0
)

// Item is the subset of an invoice line the engine reads.
type Item struct {
	Description string
	UnitPrice   float64
	HSCode      string
}

// Analysis is the outcome of one analysis run.
type Analysis struct {
	RiskLevel        Level     `json:"riskLevel"`
	DeviationPercent float64   `json:"deviationPercent"`
	Explanation      string    `json:"explanation"`
	AnalyzedAt       time.Time `json:"analyzedAt"`
}

// Analyze compares unit prices against the reference table. Items whose code
// has no band are skipped; with no matched items the deviation is zero.
func Analyze(items []Item, table *ReferenceTable, at time.Time) Analysis {
	if table == nil {
		table = DefaultTable()
	}

	var total float64
	var matched int
	var underpriced []string
	for _, item := range items {
		band, ok := table.Lookup(item.HSCode)
		if !ok {
			continue
		}
		total += (item.UnitPrice - band.Avg) / band.Avg * 100
		matched++
		if item.UnitPrice < band.Min {
			underpriced = append(underpriced, item.Description)
		}
	}

	var avg float64
	if matched > 0 {
		avg = total / float64(matched)
	}

	level := Classify(avg, len(underpriced) > 0)
	return Analysis{
		RiskLevel:        level,
		DeviationPercent: avg,
		Explanation:      explain(level, avg, underpriced),
		AnalyzedAt:       at,
	}
}

// Classify applies the threshold rules. The first matching rule wins.
func Classify(avgDeviation float64, anyBelowMin bool) Level {
	switch {
	case avgDeviation < highDeviationFloor || anyBelowMin:
		return LevelHigh
	case avgDeviation < mediumDeviationFloor || avgDeviation > mediumDeviationCeil:
		return LevelMedium
	default:
		return LevelLow
	}
}

func explain(level Level, avg float64, underpriced []string) string {
	switch level {
	case LevelHigh:
		var b strings.Builder
		b.WriteString("ALERT:")
		if len(underpriced) > 0 {
			fmt.Fprintf(&b, " Items priced below the market range: %s.", strings.Join(underpriced, ", "))
		}
		fmt.Fprintf(&b, " Average deviation of %.1f%% from market price. Physical inspection and origin verification recommended.", avg)
		return b.String()
	case LevelMedium:
		return fmt.Sprintf("Attention: deviation of %.1f%% from market price. Additional documentary review suggested.", avg)
	default:
		return fmt.Sprintf("Prices within market range (deviation of %.1f%%). No anomalies detected by automated analysis.", avg)
	}
}
