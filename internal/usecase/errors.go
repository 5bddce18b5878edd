package usecase

import crerr "github.com/cockroachdb/errors"

var (
	// ErrInvalidInput marks caller mistakes: bad identifiers, malformed
	// request bodies, out-of-range parameters.
	ErrInvalidInput = crerr.New("invalid input")

	// ErrNotFound marks lookups that matched nothing.
	ErrNotFound = crerr.New("not found")

	// ErrUnauthorized marks requests missing or failing credential checks.
	ErrUnauthorized = crerr.New("unauthorized")

	// ErrDependencyUnavailable marks upstream outages: the stats provider,
	// the archive database, the workbook directory.
	ErrDependencyUnavailable = crerr.New("dependency unavailable")

	// ErrNoUsableRosters means every per-team roster fetch failed, so
	// position enrichment cannot proceed at all.
	ErrNoUsableRosters = crerr.New("no usable rosters")

	// ErrPipelineActive means a run was requested while another is in
	// flight. Runs share output files and must not overlap.
	ErrPipelineActive = crerr.New("pipeline run already active")
)
