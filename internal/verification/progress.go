package verification

import "time"

// Step is one paced stage of the staged presentation.
type Step struct {
	Number   int           `json:"number"`
	Label    string        `json:"label"`
	Duration time.Duration `json:"-"`
}

// Steps are displayed in order while a staged run is in flight.
var Steps = []Step{
	{Number: 1, Label: "Verifying SHA-256 hash", Duration: 800 * time.Millisecond},
	{Number: 2, Label: "Validating version chain", Duration: 600 * time.Millisecond},
	{Number: 3, Label: "Checking ZK-proof credentials", Duration: 700 * time.Millisecond},
	{Number: 4, Label: "Running AI risk analysis", Duration: 900 * time.Millisecond},
}

// FinalPause separates the last step from the result.
const FinalPause = 300 * time.Millisecond

// Progress is the display state after a number of completed steps.
type Progress struct {
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Label     string  `json:"label,omitempty"`
	Percent   float64 `json:"percent"`
	Done      bool    `json:"done"`
}

// ProgressAt maps a completed-step count to display state. Label names the
// step now running and is empty once every step completed. Out-of-range
// counts are clamped.
func ProgressAt(completed int) Progress {
	total := len(Steps)
	completed = max(0, min(completed, total))
	p := Progress{
		Completed: completed,
		Total:     total,
		Percent:   float64(completed) / float64(total) * 100,
		Done:      completed == total,
	}
	if completed < total {
		p.Label = Steps[completed].Label
	}
	return p
}

// TotalDuration is the pacing of a full staged run.
func TotalDuration() time.Duration {
	var d time.Duration
	for _, s := range Steps {
		d += s.Duration
	}
	return d + FinalPause
}
