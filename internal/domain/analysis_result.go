package domain

import "time"

// NoAnalysisAvailable is shown when neither stage produced anything usable.
const NoAnalysisAvailable = "No analysis available"

type AnalysisResult struct {
	JobID          string    `csv:"job_id"           json:"job_id,omitempty"`
	StageOneOutput string    `csv:"stage_one_output" json:"stage_one_output"`
	StageTwoOutput string    `csv:"stage_two_output" json:"stage_two_output"`
	ContextUsed    bool      `csv:"context_used"     json:"context_used"`
	ProducedAt     time.Time `csv:"produced_at"      json:"produced_at"`
	Succeeded      bool      `csv:"succeeded"        json:"succeeded"`
	Error          string    `csv:"error,omitempty"  json:"error,omitempty"`
}

// Summary returns the text a client should display for the result.
func (r *AnalysisResult) Summary() string {
	if r == nil {
		return NoAnalysisAvailable
	}
	if !r.Succeeded || r.StageTwoOutput == "" {
		return NoAnalysisAvailable
	}
	return r.StageTwoOutput
}
