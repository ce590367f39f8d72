package constants

// Grid constants
const (
	GridSize   = 9
	BoxSize    = 3
	TotalCells = 81
)

// Solver limits
const (
	// MaxSolverSteps bounds the Driver loop as a defensive backstop; the
	// strictly-decreasing empty-cell/candidate-count invariant already
	// guarantees termination, but this caps pathological inputs.
	MaxSolverSteps = 500
)

// Move actions, used by the HTTP transport layer when reporting a
// StrategyResult.
const (
	ActionAssign    = "assign"
	ActionEliminate = "eliminate"
)

// Solver status, reported alongside a solve_like_human result.
const (
	StatusCompleted       = "completed"
	StatusStalled         = "stalled"
	StatusMaxStepsReached = "max_steps_reached"
)

// APIVersion is reported by the health endpoint.
const APIVersion = "0.1.0"

// DefaultPort is used when the PORT environment variable is unset.
const DefaultPort = "8080"
