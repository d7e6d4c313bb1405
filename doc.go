// Package prettyarray renders N-dimensional numeric or character arrays
// as human-readable boxed text: nested frames drawn with box-drawing
// characters, elements right-aligned per column, and large arrays
// truncated with a visible ░ marker so output stays bounded.
//
// The central entry points are [Render] and [Write], which accept any
// rectangular nested slice or array of rank >= 1 together with an
// optional [Options] value:
//
//	out, err := prettyarray.Render([][]int{{1, 2}, {3, 4}}, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(out)
//
//	// ┌   ┐
//	// │1 2│
//	// │3 4│
//	// └   ┘
//
// # Input
//
// Elements may be any Go integer type, float32/float64, or string.
// Nested []any values are accepted and unwrapped. The input must be
// rectangular; raggedness is detected up front and rendering fails
// before any output is produced. Note that []rune is indistinguishable
// from []int32 in Go, so rune elements render as integers; use string
// elements for character data.
//
// Float specials render as their literal tokens nan, inf, and -inf in
// both fixed-point and scientific notation.
//
// # Options
//
// [Options] carries the five formatting knobs: EdgeItems, LineWidth,
// Precision, SuppressExp, and Threshold. Passing nil uses
// [DefaultOptions]; to override a subset, start from [DefaultOptions]:
//
//	opts := prettyarray.DefaultOptions()
//	opts.Precision = 2
//	out, err := prettyarray.Render(data, &opts)
//
// Options can also be loaded from YAML with [OptionsFromYAML], where
// unset keys keep their defaults. There is no package-level mutable
// state: options are an explicit per-call value and renders are pure,
// so concurrent calls are safe.
//
// # Truncation
//
// An array truncates when its total element count exceeds Threshold,
// or, for rank-1 arrays only, when the joined line would exceed
// LineWidth. A truncated axis shows its first and last EdgeItems
// elements around a ░ marker; axes no longer than 2*EdgeItems+1 render
// fully even in a truncated array. Above rank 2 only the innermost two
// dimensions truncate; outer dimensions always render every block.
// This asymmetry matches the reference behavior and is intentional.
//
// The marker is booked as exactly 3 cells wide in all layout
// arithmetic, independent of its single-cell rendering, again to match
// the reference output byte-for-byte.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrNotArray] — input is not a slice or array
//   - [ErrRaggedArray] — input is not rectangular
//   - [ErrUnsupportedElement] — element type has no defined rendering
//   - [ErrInvalidOptions] — malformed YAML passed to [OptionsFromYAML]
package prettyarray
