package prettyarray

import (
	"fmt"
	"reflect"
)

// array is the flattened internal representation: one contiguous buffer
// of scalars in row-major order plus the probed shape. Building it up
// front makes rectangularity a checked property instead of an
// assumption.
type array struct {
	shape []int
	data  []any
}

func (a *array) rank() int { return len(a.shape) }

func (a *array) numElements() int {
	n := 1
	for _, d := range a.shape {
		n *= d
	}
	return n
}

// unwrap strips interface wrappers so nested []any inputs walk the same
// as concretely typed slices.
func unwrap(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Interface && !rv.IsNil() {
		rv = rv.Elem()
	}
	return rv
}

func isArrayLike(rv reflect.Value) bool {
	return rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array
}

// probeShape measures the length at each nesting level by following the
// first element down, outermost first. A zero-length level ends the
// probe, since nothing below it is observable.
func probeShape(v any) ([]int, error) {
	rv := unwrap(reflect.ValueOf(v))
	if !isArrayLike(rv) {
		return nil, fmt.Errorf("%w: %T", ErrNotArray, v)
	}
	var shape []int
	for isArrayLike(rv) {
		shape = append(shape, rv.Len())
		if rv.Len() == 0 {
			break
		}
		rv = unwrap(rv.Index(0))
	}
	return shape, nil
}

// materialize probes the shape of v and flattens it into a contiguous
// buffer, verifying along the way that every level matches the probed
// shape and that every scalar has a defined rendering.
func materialize(v any) (*array, error) {
	shape, err := probeShape(v)
	if err != nil {
		return nil, err
	}
	a := &array{shape: shape}
	a.data = make([]any, 0, a.numElements())
	if err := a.flatten(unwrap(reflect.ValueOf(v)), 0); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *array) flatten(rv reflect.Value, depth int) error {
	if depth == len(a.shape) {
		val := rv.Interface()
		if !supportedScalar(val) {
			return fmt.Errorf("%w: %T", ErrUnsupportedElement, val)
		}
		a.data = append(a.data, val)
		return nil
	}
	if !isArrayLike(rv) {
		return fmt.Errorf("%w: scalar at depth %d, expected rank %d", ErrRaggedArray, depth, len(a.shape))
	}
	if rv.Len() != a.shape[depth] {
		return fmt.Errorf("%w: length %d at depth %d, expected %d", ErrRaggedArray, rv.Len(), depth, a.shape[depth])
	}
	for i := 0; i < rv.Len(); i++ {
		if err := a.flatten(unwrap(rv.Index(i)), depth+1); err != nil {
			return err
		}
	}
	return nil
}
