package store

// ShiftDown subtracts (b-a+1) from the key of every live node with key >=
// b+1. It is used to close the gap left by deleting the range [a, b].
func (s *Store) ShiftDown(a, b int) {
	delta := b - a + 1
	shiftKeys(s.root, func(key int) (int, bool) {
		if key >= b+1 {
			return key - delta, true
		}
		return key, false
	})
}

// ShiftUp adds (b-a+1) to the key of every live node with key >= a. It is
// used to reopen the gap closed by a prior ShiftDown, i.e. to undo a
// deletion's renumbering.
func (s *Store) ShiftUp(a, b int) {
	delta := b - a + 1
	shiftKeys(s.root, func(key int) (int, bool) {
		if key >= a {
			return key + delta, true
		}
		return key, false
	})
}

// shiftKeys walks the tree in order, conditionally rewriting each node's
// key in place. Because the relative order of surviving keys never
// changes under a shift, no rotation or rebalancing is needed here -
// only the key fields move.
func shiftKeys(x *node, adjust func(key int) (int, bool)) {
	if x == nil {
		return
	}
	shiftKeys(x.left, adjust)
	if newKey, changed := adjust(x.key); changed {
		x.key = newKey
	}
	shiftKeys(x.right, adjust)
}
