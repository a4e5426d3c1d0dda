package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunReport_FoundInputAndFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		report        RunReport
		wantFound     bool
		wantFailures  int
	}{
		{
			name:      "no sources",
			report:    RunReport{},
			wantFound: false,
		},
		{
			name: "all signals skipped without files",
			report: RunReport{Sources: []SourceReport{{
				Source:      "variorum",
				Signals:     []SignalResult{{Signal: "variorum_relative", Status: StatusSkipped}},
				Correlation: &CorrelationResult{Status: StatusSkipped},
			}}},
			wantFound: false,
		},
		{
			name: "one signal found input",
			report: RunReport{Sources: []SourceReport{
				{Source: "nvml_power", Signals: []SignalResult{{Status: StatusSkipped}}},
				{Source: "variorum", Signals: []SignalResult{{Status: StatusWritten, Files: 2}}},
			}},
			wantFound: true,
		},
		{
			name: "correlation regions only",
			report: RunReport{Sources: []SourceReport{{
				Source:      "variorum",
				Correlation: &CorrelationResult{Status: StatusFailed, RegionFiles: 1},
			}}},
			wantFound:    true,
			wantFailures: 1,
		},
		{
			name: "failed signal and correlation",
			report: RunReport{Sources: []SourceReport{{
				Source:      "variorum",
				Signals:     []SignalResult{{Status: StatusFailed, Files: 1}, {Status: StatusWritten, Files: 1}},
				Correlation: &CorrelationResult{Status: StatusFailed, SampleFiles: 1},
			}}},
			wantFound:    true,
			wantFailures: 2,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantFound, tt.report.FoundInput())
			assert.Equal(t, tt.wantFailures, tt.report.Failures())
		})
	}
}
