// Package driver implements the N-D gather/transform/scatter loop
// shared by the root package's multi-axis entry points. It carries no
// knowledge of any particular 1-D engine; it only walks the element
// offsets of every 1-D line along one axis of a strided N-D array,
// mirroring pocketfft's multiarr/multi_iter.
package driver

type diminfo struct {
	n int
	s int64
}

// Iter walks every 1-D line parallel to one axis of an N-D array,
// yielding the starting offset of each line. Advance moves to the
// next line in row-major order over the remaining axes.
type Iter struct {
	dims []diminfo
	pos  []int
	ofs  int64
	len  int
	str  int64
	rem  int64
	done bool
}

// NewIter builds an iterator over the lines of shape/stride parallel
// to axis. shape and stride must have the same length; stride is in
// elements, not bytes.
func NewIter(shape []int, stride []int64, axis int) *Iter {
	it := &Iter{len: shape[axis], str: stride[axis], rem: 1}
	it.dims = make([]diminfo, 0, len(shape)-1)
	it.pos = make([]int, 0, len(shape)-1)
	for i, n := range shape {
		if n == 0 {
			it.done = true
		}
		if i == axis {
			continue
		}
		it.dims = append(it.dims, diminfo{n: n, s: stride[i]})
		it.pos = append(it.pos, 0)
		it.rem *= int64(n)
	}
	return it
}

// Done reports whether every line has been visited.
func (it *Iter) Done() bool { return it.done }

// Offset returns the element offset of the current line's first
// sample.
func (it *Iter) Offset() int64 { return it.ofs }

// Len returns the number of samples along the iterated axis.
func (it *Iter) Len() int { return it.len }

// Stride returns the element stride along the iterated axis.
func (it *Iter) Stride() int64 { return it.str }

// Remaining returns how many lines, including the current one, have
// not yet been advanced past.
func (it *Iter) Remaining() int64 { return it.rem }

// Advance moves to the next line. Calling Advance once Done reports
// true has no effect.
func (it *Iter) Advance() {
	if it.done {
		return
	}
	if it.rem--; it.rem <= 0 {
		it.done = true
		return
	}
	for i := len(it.pos) - 1; i >= 0; i-- {
		it.pos[i]++
		it.ofs += it.dims[i].s
		if it.pos[i] < it.dims[i].n {
			return
		}
		it.pos[i] = 0
		it.ofs -= int64(it.dims[i].n) * it.dims[i].s
	}
	it.done = true
}
