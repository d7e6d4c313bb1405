package prettyarray

// maxRow is the widest-row summary of the innermost 2-D view: per
// displayed column, the longest formatted string seen anywhere in that
// column (or the marker for the collapsed column slot), its width, and
// the total joined width including separator spaces.
type maxRow struct {
	cols   []string
	widths []int
	strlen int
}

// analyze scans the innermost two dimensions of a rank >= 2 array and
// builds the maxRow used for right-alignment and for sizing the padding
// lines of every enclosing frame. Every 2-D block along the outer
// dimensions contributes to the same width table, so sibling blocks in
// a nested rendering share uniform column widths.
func analyze(a *array, f formatter, tr truncator, truncate bool) maxRow {
	rank := a.rank()
	nrows, ncols := a.shape[rank-2], a.shape[rank-1]

	blocks := 1
	for _, d := range a.shape[:rank-2] {
		blocks *= d
	}

	dispRows := tr.displayCount(nrows, truncate)
	dispCols := tr.displayCount(ncols, truncate)

	mr := maxRow{
		cols:   make([]string, dispCols),
		widths: make([]int, dispCols),
	}

	for b := 0; b < blocks; b++ {
		base := b * nrows * ncols
		for rp := 0; rp < dispRows; rp++ {
			if tr.isMarker(rp, nrows, truncate) {
				continue // full-width marker row, no column data
			}
			row := base + tr.realIndex(rp, nrows)*ncols
			for cp := 0; cp < dispCols; cp++ {
				if tr.isMarker(cp, ncols, truncate) {
					mr.cols[cp] = marker
					mr.widths[cp] = markerWidth
					continue
				}
				s := f.format(a.data[row+tr.realIndex(cp, ncols)])
				if w := cellWidth(s); w > mr.widths[cp] {
					mr.widths[cp] = w
					mr.cols[cp] = s
				}
			}
		}
	}

	for _, w := range mr.widths {
		mr.strlen += w
	}
	if dispCols > 1 {
		mr.strlen += dispCols - 1
	}
	return mr
}
