package autodiff

import "errors"

// ErrShapeMismatch is returned when a graph builder receives operands of
// unequal shape, or a backward pass receives a gradient whose shape
// differs from the target node's.
//
// It is raised before any allocation or mutation and is locally
// recoverable: callers may correct shapes and retry. Numeric exceptional
// values (division by zero producing Inf/NaN) are NOT errors; they flow
// through as ordinary IEEE-754 data.
var ErrShapeMismatch = errors.New("shape mismatch")
