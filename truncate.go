package prettyarray

// truncator maps between display positions in a symmetric edge-items
// window and real indices along a truncated axis. The window holds
// edgeItems leading elements, one slot for the truncation marker, and
// edgeItems trailing elements.
type truncator struct {
	edgeItems int
	window    int
}

func newTruncator(edgeItems int) truncator {
	return truncator{edgeItems: edgeItems, window: 2*edgeItems + 1}
}

// axisTruncates reports whether a single axis truncates: only when the
// array truncates at all and the axis is strictly longer than the
// window. Shorter axes render fully even in a truncated array.
func (t truncator) axisTruncates(dimLen int, truncate bool) bool {
	return truncate && dimLen > t.window
}

// displayCount returns the number of display positions along an axis.
func (t truncator) displayCount(dimLen int, truncate bool) int {
	if t.axisTruncates(dimLen, truncate) {
		return t.window
	}
	return dimLen
}

// isMarker reports whether a display position on a truncated axis is
// the marker slot. The marker slot is never dereferenced as a real
// index.
func (t truncator) isMarker(pos, dimLen int, truncate bool) bool {
	return t.axisTruncates(dimLen, truncate) && pos == t.edgeItems
}

// realIndex maps a display position in the window to the real index
// along the axis. Positions up to edgeItems map to themselves; later
// positions count backward from the end so the last edgeItems real
// elements are exposed.
func (t truncator) realIndex(pos, dimLen int) int {
	if pos <= t.edgeItems {
		return pos
	}
	return dimLen - (t.window - pos)
}
