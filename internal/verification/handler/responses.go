package handler

import "contium/internal/verification"

// ResultResponse adds the summary verdict to a verification result.
type ResultResponse struct {
	*verification.Result
	Valid bool `json:"valid"`
}

func newResultResponse(res *verification.Result) ResultResponse {
	return ResultResponse{Result: res, Valid: res.Valid()}
}

type stepResponse struct {
	Number     int    `json:"number"`
	Label      string `json:"label"`
	DurationMs int64  `json:"durationMs"`
}

// StepsResponse describes the staged presentation.
type StepsResponse struct {
	Steps   []stepResponse `json:"steps"`
	TotalMs int64          `json:"totalMs"`
}

func newStepsResponse() StepsResponse {
	steps := make([]stepResponse, 0, len(verification.Steps))
	for _, s := range verification.Steps {
		steps = append(steps, stepResponse{Number: s.Number, Label: s.Label, DurationMs: s.Duration.Milliseconds()})
	}
	return StepsResponse{Steps: steps, TotalMs: verification.TotalDuration().Milliseconds()}
}

// StreamEvent is one NDJSON line of a staged run.
type StreamEvent struct {
	Type     string                 `json:"type"`
	Progress *verification.Progress `json:"progress,omitempty"`
	Result   *ResultResponse        `json:"result,omitempty"`
	Error    string                 `json:"error,omitempty"`
}

const (
	eventProgress = "progress"
	eventResult   = "result"
	eventError    = "error"
)
