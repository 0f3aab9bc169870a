package runtime

import "github.com/aretw0/macexpect/pkg/domain"

// worklist owns every pending state. It pops in FIFO order for breadth-first
// traversal and LIFO order for depth-first traversal.
type worklist struct {
	items []domain.State
	head  int
	lifo  bool
}

func newWorklist(order domain.Traversal) *worklist {
	return &worklist{lifo: order == domain.DepthFirst}
}

func (w *worklist) push(s domain.State) {
	w.items = append(w.items, s)
}

func (w *worklist) len() int {
	return len(w.items) - w.head
}

func (w *worklist) pop() (domain.State, bool) {
	if w.len() == 0 {
		return domain.State{}, false
	}

	if w.lifo {
		last := len(w.items) - 1
		s := w.items[last]
		w.items = w.items[:last]
		return s, true
	}

	s := w.items[w.head]
	w.head++
	if w.head == len(w.items) {
		// Drained: reuse the backing array.
		w.items = w.items[:0]
		w.head = 0
	}
	return s, true
}
