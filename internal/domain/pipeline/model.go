package pipeline

import "time"

// Run states.
const (
	StatusIdle      = "idle"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusDegraded  = "completed_with_warnings"
	StatusFailed    = "failed"
)

// RunReport summarizes one pipeline run for operators: what was written,
// what degraded, and how long it took.
type RunReport struct {
	Season            string         `json:"season"`
	Status            string         `json:"status"`
	StartedAt         time.Time      `json:"startedAt"`
	FinishedAt        time.Time      `json:"finishedAt"`
	TablesWritten     []string       `json:"tablesWritten"`
	RowCounts         map[string]int `json:"rowCounts,omitempty"`
	FailedRosterTeams []string       `json:"failedRosterTeams,omitempty"`
	Warnings          []string       `json:"warnings,omitempty"`
	Error             string         `json:"error,omitempty"`
}
