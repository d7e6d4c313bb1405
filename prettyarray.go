package prettyarray

import (
	"bytes"
	"errors"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNotArray           = errors.New("input is not an array")
	ErrRaggedArray        = errors.New("ragged array")
	ErrUnsupportedElement = errors.New("unsupported element type")
	ErrInvalidOptions     = errors.New("invalid options")
)

// Shape returns the per-dimension lengths of a nested slice or array,
// outermost first. It follows the first element down each level and does
// not verify that the input is rectangular. A non-array input returns
// [ErrNotArray].
func Shape(v any) ([]int, error) {
	return probeShape(v)
}

// Write renders v and writes the boxed text to w. A nil opts is
// equivalent to [DefaultOptions].
//
// The output is assembled in full before anything is written, so a
// failed call never leaves partial output on w.
func Write(w io.Writer, v any, opts *Options) error {
	s, err := Render(v, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// Render renders v as a boxed text representation and returns it.
// A nil opts is equivalent to [DefaultOptions].
//
// v must be a rectangular nested slice or array of rank >= 1 whose
// elements are integers, floats, or strings. Violations return one of
// [ErrNotArray], [ErrRaggedArray], or [ErrUnsupportedElement].
func Render(v any, opts *Options) (string, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	a, err := materialize(v)
	if err != nil {
		return "", err
	}

	f := formatter{precision: o.Precision, suppressExp: o.SuppressExp}
	tr := newTruncator(o.EdgeItems)

	var body []string
	var inner int // interior width of the outermost frame

	if a.rank() == 1 {
		truncate := shouldTruncate1D(a, f, o)
		line, width := renderVector(a, f, tr, truncate)
		body = []string{line}
		inner = width
	} else {
		truncate := a.numElements() > o.Threshold
		mr := analyze(a, f, tr, truncate)
		body = renderFrames(a, a.shape, 0, f, tr, truncate, mr)
		inner = mr.strlen + 2*(a.rank()-2)
	}

	pad := strings.Repeat(" ", inner)
	var sb strings.Builder
	sb.WriteString(boxFrame.topLeft + pad + boxFrame.topRight + "\n")
	for _, line := range body {
		sb.WriteString(boxFrame.vertical)
		sb.WriteString(line)
		sb.WriteString(boxFrame.vertical)
		sb.WriteString("\n")
	}
	sb.WriteString(boxFrame.bottomLeft + pad + boxFrame.bottomRight + "\n")
	return sb.String(), nil
}

// Marshal renders v and returns the bytes.
func Marshal(v any, opts *Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, v, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// shouldTruncate1D decides truncation for a rank-1 array: either the
// element count exceeds the threshold, or the fully joined line would
// exceed the configured line width.
func shouldTruncate1D(a *array, f formatter, o Options) bool {
	if a.numElements() > o.Threshold {
		return true
	}
	width := 0
	for i, v := range a.data {
		if i > 0 {
			width++
		}
		width += cellWidth(f.format(v))
	}
	return width > o.LineWidth
}
