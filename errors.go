package xfft

import "errors"

// Sentinel errors returned by the transform constructors and drivers.
var (
	// ErrInvalidLength is returned when a transform length is zero,
	// negative, or factors into more stages than the engine supports.
	ErrInvalidLength = errors.New("xfft: invalid length")

	// ErrNilSlice is returned when a required input or output slice
	// is nil.
	ErrNilSlice = errors.New("xfft: nil slice")

	// ErrLengthMismatch is returned when a slice passed to a plan's
	// Forward or Backward is shorter than the plan's length. The
	// multi-axis drivers do not check slice lengths against shape and
	// strides.
	ErrLengthMismatch = errors.New("xfft: slice length mismatch")

	// ErrInvalidStride is returned by the multi-axis drivers when an
	// axis being transformed has a stride of zero.
	ErrInvalidStride = errors.New("xfft: invalid stride")

	// ErrInvalidShape is returned when an axis index is out of range,
	// an axis list names more axes than the data has dimensions, a
	// stride list's length differs from the shape's, or an extent is
	// negative.
	ErrInvalidShape = errors.New("xfft: invalid shape")

	// ErrAllocation names a failure to acquire memory at plan
	// construction. No constructor or driver in this package returns
	// it.
	ErrAllocation = errors.New("xfft: allocation failed")
)
