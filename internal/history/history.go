package history

// History holds the undo and redo stacks plus the logical group counters.
// The counters track distinct command groups, not raw records: they are
// what a user-level undo or redo step decrements and increments.
type History struct {
	undo []Record
	redo []Record

	undoGroups int
	redoGroups int
}

// New returns an empty history.
func New() *History {
	return &History{}
}

// UndoGroups reports the number of mutating commands not yet undone.
func (h *History) UndoGroups() int {
	return h.undoGroups
}

// RedoGroups reports the number of undone commands not yet redone or
// invalidated.
func (h *History) RedoGroups() int {
	return h.redoGroups
}

// Push appends a primitive record to the undo stack, as part of the
// command group currently being built. It does not itself advance
// UndoGroups - call CommitGroup once the whole command's records have been
// pushed.
func (h *History) Push(r Record) {
	h.undo = append(h.undo, r)
}

// CommitGroup finalizes the command group just pushed via Push: it
// advances the undo group counter by one and clears the redo stack, per
// the rule that any new mutating command invalidates redo.
func (h *History) CommitGroup() {
	h.undoGroups++
	h.ClearRedo()
}

// ClearRedo empties the redo stack and resets its group counter to zero.
func (h *History) ClearRedo() {
	h.redo = h.redo[:0]
	h.redoGroups = 0
}

func (h *History) popUndo() (Record, bool) {
	n := len(h.undo)
	if n == 0 {
		return Record{}, false
	}
	r := h.undo[n-1]
	h.undo = h.undo[:n-1]
	return r, true
}

func (h *History) popRedo() (Record, bool) {
	n := len(h.redo)
	if n == 0 {
		return Record{}, false
	}
	r := h.redo[n-1]
	h.redo = h.redo[:n-1]
	return r, true
}

// UndoStep drains one whole command group off the undo stack - every
// record sharing the group id at the top - replaying each with apply and
// pushing it onto the redo stack. It reports whether a group was
// available to drain. apply is called once per record, in pop order (the
// reverse of the order the records were originally pushed).
func (h *History) UndoStep(apply func(Record)) bool {
	if len(h.undo) == 0 {
		return false
	}

	gid := h.undo[len(h.undo)-1].GroupID

	for len(h.undo) > 0 && h.undo[len(h.undo)-1].GroupID == gid {
		rec, _ := h.popUndo()
		apply(rec)
		h.redo = append(h.redo, rec)
	}

	h.undoGroups--
	h.redoGroups++

	return true
}

// RedoStep is the mirror of UndoStep: it drains one command group off the
// redo stack, replaying each record with apply and pushing it back onto
// the undo stack.
func (h *History) RedoStep(apply func(Record)) bool {
	if len(h.redo) == 0 {
		return false
	}

	gid := h.redo[len(h.redo)-1].GroupID

	for len(h.redo) > 0 && h.redo[len(h.redo)-1].GroupID == gid {
		rec, _ := h.popRedo()
		apply(rec)
		h.undo = append(h.undo, rec)
	}

	h.redoGroups--
	h.undoGroups++

	return true
}
