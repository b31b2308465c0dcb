package router

// replay wraps a pull-based sequence and memoizes every produced item, so a
// product pass can revisit earlier positions without re-running the source.
// The underlying pull is invoked at most once per position.
type replay[T any] struct {
	pull  func() (T, bool)
	items []T
	done  bool
}

// replayOf wraps a pull function.
func replayOf[T any](pull func() (T, bool)) *replay[T] {
	return &replay[T]{pull: pull}
}

// replayOfSlice wraps an already materialized dimension.
func replayOfSlice[T any](items []T) *replay[T] {
	return &replay[T]{items: items, done: true}
}

// at returns the item at position i, extending the memo as needed.
func (r *replay[T]) at(i int) (T, bool) {
	for len(r.items) <= i && !r.done {
		item, ok := r.pull()
		if !ok {
			r.done = true

			break
		}
		r.items = append(r.items, item)
	}
	if i < len(r.items) {
		return r.items[i], true
	}
	var zero T

	return zero, false
}

// product enumerates the Cartesian product of its dimensions in canonical
// order: the last dimension varies fastest. Dimensions may be lazy and of
// unknown length; an empty dimension empties the whole product. A product
// over zero dimensions yields a single empty tuple.
type product[T any] struct {
	dims      []*replay[T]
	idx       []int
	started   bool
	exhausted bool
}

// productOf builds a product iterator over the given dimensions.
func productOf[T any](dims ...*replay[T]) *product[T] {
	return &product[T]{dims: dims, idx: make([]int, len(dims))}
}

// next returns the next tuple of the product, or ok=false when exhausted.
// The returned slice is freshly allocated and caller-owned.
func (p *product[T]) next() ([]T, bool) {
	if p.exhausted {
		return nil, false
	}
	if !p.started {
		p.started = true
		for d := range p.dims {
			if _, ok := p.dims[d].at(0); !ok {
				p.exhausted = true

				return nil, false
			}
		}

		return p.tuple(), true
	}

	// Odometer step: advance the fastest dimension, carrying on exhaustion.
	for d := len(p.dims) - 1; d >= 0; d-- {
		p.idx[d]++
		if _, ok := p.dims[d].at(p.idx[d]); ok {
			return p.tuple(), true
		}
		p.idx[d] = 0
	}
	p.exhausted = true

	return nil, false
}

// tuple materializes the current index vector.
func (p *product[T]) tuple() []T {
	out := make([]T, len(p.dims))
	for d := range p.dims {
		item, _ := p.dims[d].at(p.idx[d])
		out[d] = item
	}

	return out
}
