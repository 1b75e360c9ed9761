package xfft

import (
	"github.com/cwbudde/xfft/internal/driver"
)

// ExecC2C runs a complex-to-complex DFT over one or more axes of an
// N-D array in place-by-copy: for each axis in turn it gathers every
// 1-D line parallel to that axis into a contiguous scratch buffer,
// transforms it with a cached length-appropriate Plan, and scatters
// the result back out, exactly as pocketfft's general_c driver does.
// Only the first axis is scaled by fct; every later axis applies a
// factor of 1, and reads its input from the previous axis's output.
func ExecC2C[T Complex](shape []int, strideIn, strideOut []int64, axes []int, forward bool, dataIn, dataOut []T, fct float64) error {
	if dataIn == nil || dataOut == nil {
		return ErrNilSlice
	}
	if len(axes) > len(shape) {
		return ErrInvalidShape
	}
	for _, ax := range axes {
		if ax < 0 || ax >= len(shape) {
			return ErrInvalidShape
		}
	}
	if err := checkShapeStride(shape, strideIn, axes); err != nil {
		return err
	}
	if err := checkShapeStride(shape, strideOut, axes); err != nil {
		return err
	}

	in, out := dataIn, dataOut
	sin, sout := strideIn, strideOut
	scale := fct

	for _, axis := range axes {
		n := shape[axis]
		plan, err := cachedComplexPlan[T](defaultPlanCache, n)
		if err != nil {
			return err
		}

		itIn := driver.NewIter(shape, sin, axis)
		itOut := driver.NewIter(shape, sout, axis)
		line := make([]T, n)
		lineOut := make([]T, n)

		for !itIn.Done() {
			for i := 0; i < n; i++ {
				line[i] = in[itIn.Offset()+int64(i)*itIn.Stride()]
			}
			if forward {
				if err := plan.Forward(lineOut, line, scale); err != nil {
					return err
				}
			} else {
				if err := plan.Backward(lineOut, line, scale); err != nil {
					return err
				}
			}
			for i := 0; i < n; i++ {
				out[itOut.Offset()+int64(i)*itOut.Stride()] = lineOut[i]
			}
			itIn.Advance()
			itOut.Advance()
		}

		// after the first axis, read from the output array and drop
		// to unit scale, matching pocketfft_general_c's "a_in = a_out"
		// rebind.
		in, sin = out, sout
		scale = 1
	}
	return nil
}

// checkShapeStride validates that stride has one entry per dimension of
// shape, that every extent is non-negative, and that every axis actually
// being transformed has a nonzero stride. A stride of zero is only
// permissible for broadcast axes that aren't in axes: a transformed axis
// with stride 0 would gather every sample of its line from the same
// address, silently producing a bogus transform instead of an error.
func checkShapeStride(shape []int, stride []int64, axes []int) error {
	if len(stride) != len(shape) {
		return ErrInvalidShape
	}
	for _, n := range shape {
		if n < 0 {
			return ErrInvalidShape
		}
	}
	for _, ax := range axes {
		if stride[ax] == 0 {
			return ErrInvalidStride
		}
	}
	return nil
}

// ExecR2C runs a real-to-halfcomplex DFT along a single axis of an
// N-D array, gathering and scattering lines exactly as
// pocketfft_general_r2c does. dataOut must be addressable with the
// halfcomplex CCE layout RealPlan.Forward produces, laid out along
// the same axis as dataIn.
func ExecR2C[T Float](shape []int, strideIn, strideOut []int64, axis int, dataIn, dataOut []T, fct float64) error {
	if dataIn == nil || dataOut == nil {
		return ErrNilSlice
	}
	if axis < 0 || axis >= len(shape) {
		return ErrInvalidShape
	}
	if err := checkShapeStride(shape, strideIn, []int{axis}); err != nil {
		return err
	}
	if err := checkShapeStride(shape, strideOut, []int{axis}); err != nil {
		return err
	}

	n := shape[axis]
	plan, err := cachedRealPlan[T](defaultPlanCache, n)
	if err != nil {
		return err
	}

	itIn := driver.NewIter(shape, strideIn, axis)
	itOut := driver.NewIter(shape, strideOut, axis)
	line := make([]T, n)
	lineOut := make([]T, n)

	for !itIn.Done() {
		for i := 0; i < n; i++ {
			line[i] = dataIn[itIn.Offset()+int64(i)*itIn.Stride()]
		}
		if err := plan.Forward(lineOut, line, fct); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			dataOut[itOut.Offset()+int64(i)*itOut.Stride()] = lineOut[i]
		}
		itIn.Advance()
		itOut.Advance()
	}
	return nil
}

// ExecC2R runs a halfcomplex-to-real inverse DFT along a single axis,
// the inverse of ExecR2C, mirroring pocketfft_general_c2r.
func ExecC2R[T Float](shape []int, strideIn, strideOut []int64, axis int, dataIn, dataOut []T, fct float64) error {
	if dataIn == nil || dataOut == nil {
		return ErrNilSlice
	}
	if axis < 0 || axis >= len(shape) {
		return ErrInvalidShape
	}
	if err := checkShapeStride(shape, strideIn, []int{axis}); err != nil {
		return err
	}
	if err := checkShapeStride(shape, strideOut, []int{axis}); err != nil {
		return err
	}

	n := shape[axis]
	plan, err := cachedRealPlan[T](defaultPlanCache, n)
	if err != nil {
		return err
	}

	itIn := driver.NewIter(shape, strideIn, axis)
	itOut := driver.NewIter(shape, strideOut, axis)
	line := make([]T, n)
	lineOut := make([]T, n)

	for !itIn.Done() {
		for i := 0; i < n; i++ {
			line[i] = dataIn[itIn.Offset()+int64(i)*itIn.Stride()]
		}
		if err := plan.Backward(lineOut, line, fct); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			dataOut[itOut.Offset()+int64(i)*itOut.Stride()] = lineOut[i]
		}
		itIn.Advance()
		itOut.Advance()
	}
	return nil
}

// ExecR2R runs a real-to-real Hartley transform over one or more axes
// of an N-D array, matching pocketfft_general_hartley's axis loop:
// the first axis is scaled by fct, later axes use a factor of 1 and
// read from the previous axis's output.
func ExecR2R[T Float](shape []int, strideIn, strideOut []int64, axes []int, dataIn, dataOut []T, fct float64) error {
	if dataIn == nil || dataOut == nil {
		return ErrNilSlice
	}
	if len(axes) > len(shape) {
		return ErrInvalidShape
	}
	for _, ax := range axes {
		if ax < 0 || ax >= len(shape) {
			return ErrInvalidShape
		}
	}
	if err := checkShapeStride(shape, strideIn, axes); err != nil {
		return err
	}
	if err := checkShapeStride(shape, strideOut, axes); err != nil {
		return err
	}

	in, out := dataIn, dataOut
	sin, sout := strideIn, strideOut
	scale := fct

	for _, axis := range axes {
		n := shape[axis]
		plan, err := cachedHartleyPlan[T](defaultPlanCache, n)
		if err != nil {
			return err
		}

		itIn := driver.NewIter(shape, sin, axis)
		itOut := driver.NewIter(shape, sout, axis)
		line := make([]T, n)
		lineOut := make([]T, n)

		for !itIn.Done() {
			for i := 0; i < n; i++ {
				line[i] = in[itIn.Offset()+int64(i)*itIn.Stride()]
			}
			if err := plan.Transform(lineOut, line, scale); err != nil {
				return err
			}
			for i := 0; i < n; i++ {
				out[itOut.Offset()+int64(i)*itOut.Stride()] = lineOut[i]
			}
			itIn.Advance()
			itOut.Advance()
		}

		in, sin = out, sout
		scale = 1
	}
	return nil
}
