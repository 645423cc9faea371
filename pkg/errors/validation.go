package errors

// Algorithm names recognized across the CLI and config file.
const (
	AlgorithmOptimal = "optimal"
	AlgorithmGreedy  = "greedy"
)

// MaxWidth caps the accepted line width. Widths beyond any real terminal or
// page are almost certainly typos and are rejected rather than silently
// chewed on by the planner.
const MaxWidth = 10000

// ValidateWidth validates a target line width from a flag or config file.
func ValidateWidth(width int) error {
	if width <= 0 {
		return New(ErrCodeInvalidWidth, "width must be positive, got %d", width)
	}
	if width > MaxWidth {
		return New(ErrCodeInvalidWidth, "width too large (max %d), got %d", MaxWidth, width)
	}
	return nil
}

// ValidateAlgorithm validates a break-strategy name from a flag or config file.
func ValidateAlgorithm(name string) error {
	switch name {
	case AlgorithmOptimal, AlgorithmGreedy:
		return nil
	case "":
		return New(ErrCodeInvalidAlgorithm, "algorithm cannot be empty")
	default:
		return New(ErrCodeInvalidAlgorithm, "unknown algorithm %q (must be %q or %q)", name, AlgorithmOptimal, AlgorithmGreedy)
	}
}
