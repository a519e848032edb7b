package review

import "fmt"

// Navigator holds the current page pointer. Next and Prev clamp at the ends
// of the page sequence; GoTo rejects indices outside it.
type Navigator struct {
	current int
	count   int
}

// NewNavigator starts at the first page.
func NewNavigator(pageCount int) *Navigator {
	return &Navigator{count: pageCount}
}

// Current returns the current page index.
func (n *Navigator) Current() int {
	return n.current
}

// Next moves forward one page and reports whether the pointer moved.
func (n *Navigator) Next() bool {
	if n.current >= n.count-1 {
		return false
	}
	n.current++
	return true
}

// Prev moves back one page and reports whether the pointer moved.
func (n *Navigator) Prev() bool {
	if n.current <= 0 {
		return false
	}
	n.current--
	return true
}

// GoTo moves to the given page index.
func (n *Navigator) GoTo(index int) error {
	if index < 0 || index >= n.count {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrPageIndexOutOfRange, index, n.count)
	}
	n.current = index
	return nil
}

// ApproveAndAdvance approves the current page and moves to the next one.
// On the last page it approves without moving.
func (n *Navigator) ApproveAndAdvance(t *Tracker) bool {
	t.Approve(n.current)
	return n.Next()
}
