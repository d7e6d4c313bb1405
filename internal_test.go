package prettyarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealIndexSymmetry(t *testing.T) {
	t.Parallel()
	tr := newTruncator(3)
	// First edge maps identity, last edge counts back from the end.
	assert.Equal(t, 0, tr.realIndex(0, 500))
	assert.Equal(t, 1, tr.realIndex(1, 500))
	assert.Equal(t, 2, tr.realIndex(2, 500))
	assert.Equal(t, 497, tr.realIndex(4, 500))
	assert.Equal(t, 498, tr.realIndex(5, 500))
	assert.Equal(t, 499, tr.realIndex(6, 500))
}

func TestAxisTruncatesGuard(t *testing.T) {
	t.Parallel()
	tr := newTruncator(3)
	assert.False(t, tr.axisTruncates(7, true)) // equal to window: renders fully
	assert.True(t, tr.axisTruncates(8, true))
	assert.False(t, tr.axisTruncates(100, false))
}

func TestDisplayCount(t *testing.T) {
	t.Parallel()
	tr := newTruncator(2)
	assert.Equal(t, 4, tr.displayCount(4, true))
	assert.Equal(t, 5, tr.displayCount(5, true))
	assert.Equal(t, 5, tr.displayCount(6, true))
	assert.Equal(t, 6, tr.displayCount(6, false))
}

func TestIsMarker(t *testing.T) {
	t.Parallel()
	tr := newTruncator(3)
	assert.True(t, tr.isMarker(3, 10, true))
	assert.False(t, tr.isMarker(2, 10, true))
	assert.False(t, tr.isMarker(3, 7, true))
	assert.False(t, tr.isMarker(3, 10, false))
}

func TestCellWidthMeasuresRealWidth(t *testing.T) {
	t.Parallel()
	// Marker-slot pinning happens where the slot is filled; the glyph
	// itself measures one cell like any other string element.
	assert.Equal(t, 1, cellWidth(marker))
	assert.Equal(t, 2, cellWidth("12"))
	assert.Equal(t, 2, cellWidth("你")) // runewidth handles wide runes
}

func TestAlignRight(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "  7", alignRight("7", 3))
	assert.Equal(t, "wide", alignRight("wide", 2))
}

func TestFormatterIntegers(t *testing.T) {
	t.Parallel()
	f := formatter{precision: 6, suppressExp: true}
	assert.Equal(t, "-42", f.format(-42))
	assert.Equal(t, "42", f.format(uint8(42)))
	assert.Equal(t, "9000000000", f.format(int64(9000000000)))
}

func TestFormatterFloats(t *testing.T) {
	t.Parallel()
	fixed := formatter{precision: 2, suppressExp: true}
	assert.Equal(t, "3.14", fixed.format(3.14159))
	assert.Equal(t, "-0.41", fixed.format(-0.412223))

	sci := formatter{precision: 2, suppressExp: false}
	assert.Equal(t, "3.14e+00", sci.format(3.14159))
	assert.Equal(t, "4.79e+02", sci.format(479.311231))
}

func TestFormatterString(t *testing.T) {
	t.Parallel()
	f := formatter{precision: 6, suppressExp: true}
	assert.Equal(t, "x", f.format("x"))
}

func TestSupportedScalar(t *testing.T) {
	t.Parallel()
	assert.True(t, supportedScalar(1))
	assert.True(t, supportedScalar(1.5))
	assert.True(t, supportedScalar("a"))
	assert.False(t, supportedScalar(true))
	assert.False(t, supportedScalar([]int{1}))
}

func TestProbeShapeStopsAtZeroLength(t *testing.T) {
	t.Parallel()
	shape, err := probeShape([][]int{})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, shape)
}

func TestMaterializeRowMajorOrder(t *testing.T) {
	t.Parallel()
	a, err := materialize([][][]int{{{1, 2}, {3, 4}}, {{5, 6}, {7, 8}}})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 2}, a.shape)
	assert.Equal(t, []any{1, 2, 3, 4, 5, 6, 7, 8}, a.data)
}

func TestAnalyzeWidths(t *testing.T) {
	t.Parallel()
	a, err := materialize([][]int{{1, 2}, {3, 4}, {5, 600}})
	require.NoError(t, err)
	f := formatter{precision: 6, suppressExp: true}
	mr := analyze(a, f, newTruncator(3), false)
	assert.Equal(t, []int{1, 3}, mr.widths)
	assert.Equal(t, []string{"1", "600"}, mr.cols)
	assert.Equal(t, 5, mr.strlen)
}

func TestAnalyzeMarkerColumn(t *testing.T) {
	t.Parallel()
	a, err := materialize([][]int{
		{1, 2, 3, 4, 5, 6, 7, 8},
		{9, 10, 11, 12, 13, 14, 15, 16},
	})
	require.NoError(t, err)
	f := formatter{precision: 6, suppressExp: true}
	tr := newTruncator(2)
	mr := analyze(a, f, tr, true)
	// Display columns: two leading, the marker slot, two trailing.
	require.Len(t, mr.widths, 5)
	assert.Equal(t, marker, mr.cols[2])
	assert.Equal(t, markerWidth, mr.widths[2])
	// strlen counts the marker at its booked width, not the widths of
	// the columns it collapsed.
	assert.Equal(t, 1+2+3+2+2+4, mr.strlen)
}

func TestShouldTruncate1D(t *testing.T) {
	t.Parallel()
	f := formatter{precision: 6, suppressExp: true}
	o := DefaultOptions()

	small, err := materialize([]int{1, 2, 3})
	require.NoError(t, err)
	assert.False(t, shouldTruncate1D(small, f, o))

	o.LineWidth = 4
	assert.True(t, shouldTruncate1D(small, f, o))
}
