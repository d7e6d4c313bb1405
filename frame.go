package prettyarray

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// frameChars is the box-drawing glyph set for one frame.
type frameChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	vertical                                   string
}

var boxFrame = frameChars{
	topLeft: "┌", topRight: "┐", bottomLeft: "└", bottomRight: "┘",
	vertical: "│",
}

// marker flags truncated spans. Marker slots are booked at markerWidth
// cells in all layout arithmetic, never measured, to reproduce the
// reference output exactly. The pinning applies only to the slots the
// truncation window reserves; a string element that happens to equal
// the glyph measures its real width.
const (
	marker      = "░"
	markerWidth = 3
)

// cellWidth returns the display width of one formatted cell.
func cellWidth(s string) int {
	return runewidth.StringWidth(s)
}

func alignRight(s string, width int) string {
	pad := width - cellWidth(s)
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

// renderVector builds the single content line of a rank-1 array and
// returns it along with its booked width. Elements are joined by single
// spaces with no alignment; a truncated axis shows the leading edge,
// the marker, and the trailing edge. Side borders are added by the
// enclosing frame.
func renderVector(a *array, f formatter, tr truncator, truncate bool) (string, int) {
	n := a.shape[0]
	count := tr.displayCount(n, truncate)

	parts := make([]string, count)
	width := 0
	for pos := 0; pos < count; pos++ {
		if tr.isMarker(pos, n, truncate) {
			parts[pos] = marker
			width += markerWidth
		} else {
			parts[pos] = f.format(a.data[tr.realIndex(pos, n)])
			width += cellWidth(parts[pos])
		}
	}
	if count > 1 {
		width += count - 1
	}
	return strings.Join(parts, " "), width
}

// renderFrames recursively builds the content lines for the dims suffix
// of the shape, reading elements from the flat buffer starting at
// offset. Rank 2 is the base case; above it, each index along the
// outermost dimension becomes a padding-line pair around its sub-block,
// whose lines gain one border column per enclosing frame. The lines
// returned at any level carry the borders of every frame below the
// caller but not the caller's own, which is also what lets the
// outermost wrapper in Render treat every rank uniformly. Outer
// dimensions never truncate; only the innermost two axes do.
func renderFrames(a *array, dims []int, offset int, f formatter, tr truncator, truncate bool, mr maxRow) []string {
	if len(dims) == 2 {
		return renderRows(a, dims, offset, f, tr, truncate, mr)
	}

	sub := 1
	for _, d := range dims[1:] {
		sub *= d
	}
	pad := strings.Repeat(" ", mr.strlen+2*(len(dims)-3))

	var out []string
	for i := 0; i < dims[0]; i++ {
		out = append(out, boxFrame.topLeft+pad+boxFrame.topRight)
		for _, line := range renderFrames(a, dims[1:], offset+i*sub, f, tr, truncate, mr) {
			out = append(out, boxFrame.vertical+line+boxFrame.vertical)
		}
		out = append(out, boxFrame.bottomLeft+pad+boxFrame.bottomRight)
	}
	return out
}

// renderRows builds one content line per displayed row of a 2-D block:
// cells right-aligned to the maxRow column widths and joined by single
// spaces, the marker substituted for the collapsed column slot, and a
// full-width marker line for the collapsed row slot.
func renderRows(a *array, dims []int, offset int, f formatter, tr truncator, truncate bool, mr maxRow) []string {
	nrows, ncols := dims[0], dims[1]
	dispRows := tr.displayCount(nrows, truncate)
	dispCols := tr.displayCount(ncols, truncate)

	lines := make([]string, 0, dispRows)
	for rp := 0; rp < dispRows; rp++ {
		if tr.isMarker(rp, nrows, truncate) {
			lines = append(lines, strings.Repeat(marker, mr.strlen))
			continue
		}
		row := offset + tr.realIndex(rp, nrows)*ncols
		cells := make([]string, dispCols)
		for cp := 0; cp < dispCols; cp++ {
			if tr.isMarker(cp, ncols, truncate) {
				// Every row carries the marker here and the column is
				// already booked at markerWidth, so no padding applies.
				cells[cp] = marker
				continue
			}
			cells[cp] = alignRight(f.format(a.data[row+tr.realIndex(cp, ncols)]), mr.widths[cp])
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return lines
}
