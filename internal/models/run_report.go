package models

import "time"

type Status string

const (
	StatusWritten Status = "written"
	StatusEmpty   Status = "empty"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// SignalResult is the outcome of aggregating one signal of a source.
type SignalResult struct {
	Signal    string `json:"signal"`
	Status    Status `json:"status"`
	Files     int    `json:"files"`
	Rows      int    `json:"rows"`
	OutputKey string `json:"outputKey,omitempty"`
	ErrorCode string `json:"errorCode,omitempty"`
	Message   string `json:"message,omitempty"`
}

// FoundInput reports whether at least one input file matched the signal.
func (r *SignalResult) FoundInput() bool {
	return r.Files > 0
}

// CorrelationResult is the outcome of the correlation step of a source.
type CorrelationResult struct {
	Status         Status `json:"status"`
	SampleFiles    int    `json:"sampleFiles"`
	RegionFiles    int    `json:"regionFiles"`
	Regions        int    `json:"regions"`
	Samples        int    `json:"samples"`
	Matched        int    `json:"matched"`
	Unknown        int    `json:"unknown"`
	SkippedSamples int    `json:"skippedSamples"`
	SeriesRows     int    `json:"seriesRows"`
	Overwrites     int    `json:"overwrites"`
	CorrelationKey string `json:"correlationKey,omitempty"`
	SeriesKey      string `json:"seriesKey,omitempty"`
	SchemaKey      string `json:"schemaKey,omitempty"`
	Loaded         bool   `json:"loaded"`
	ErrorCode      string `json:"errorCode,omitempty"`
	Message        string `json:"message,omitempty"`
}

type SourceReport struct {
	Source      string             `json:"source"`
	Window      WindowSize         `json:"windowMs"`
	Signals     []SignalResult     `json:"signals"`
	Correlation *CorrelationResult `json:"correlation,omitempty"`
}

// FoundInput reports whether any signal or the correlation step saw input files.
func (r *SourceReport) FoundInput() bool {
	for i := range r.Signals {
		if r.Signals[i].FoundInput() {
			return true
		}
	}
	return r.Correlation != nil && (r.Correlation.SampleFiles > 0 || r.Correlation.RegionFiles > 0)
}

type RunReport struct {
	RunID      string         `json:"runId"`
	StartedAt  time.Time      `json:"startedAt"`
	FinishedAt time.Time      `json:"finishedAt"`
	Sources    []SourceReport `json:"sources"`
}

func (r *RunReport) FoundInput() bool {
	for i := range r.Sources {
		if r.Sources[i].FoundInput() {
			return true
		}
	}
	return false
}

// Failures counts failed signals and correlation steps.
func (r *RunReport) Failures() int {
	failures := 0
	for _, source := range r.Sources {
		for _, signal := range source.Signals {
			if signal.Status == StatusFailed {
				failures++
			}
		}
		if source.Correlation != nil && source.Correlation.Status == StatusFailed {
			failures++
		}
	}
	return failures
}
