package pagination

import "strconv"

// Label is one entry of the pagination bar: a page button or an ellipsis
type Label struct {
	Page     int // 0 for an ellipsis
	Ellipsis bool
	Current  bool
}

// String renders the label the way the pagination bar shows it
func (l Label) String() string {
	if l.Ellipsis {
		return "..."
	}
	return strconv.Itoa(l.Page)
}

// Labels returns the page buttons for a bar positioned at current out of
// total pages. The first and last pages are always present together with
// the direct neighbours of the current page; gaps collapse into an
// ellipsis. A single page (or none) needs no bar and yields nil.
func Labels(current, total int) []Label {
	if total <= 1 {
		return nil
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	labels := []Label{{Page: 1, Current: current == 1}}

	start := max(2, current-1)
	end := min(total-1, current+1)

	if start > 2 {
		labels = append(labels, Label{Ellipsis: true})
	}
	for i := start; i <= end; i++ {
		labels = append(labels, Label{Page: i, Current: current == i})
	}
	if end < total-1 {
		labels = append(labels, Label{Ellipsis: true})
	}

	labels = append(labels, Label{Page: total, Current: current == total})
	return labels
}

// CanPrev reports whether the "back" button is enabled
func CanPrev(current int) bool {
	return current > 1
}

// CanNext reports whether the "forward" button is enabled
func CanNext(current, total int) bool {
	return current < total
}
