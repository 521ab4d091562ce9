// Package history implements the dual-stack undo/redo history. It owns
// the undo and redo stacks of primitive records and the group-id
// bookkeeping that lets UNDO/REDO replay a whole user command atomically,
// but it does not itself know how to apply a record to the line store -
// that interpretation is supplied by the caller as a callback, since it
// requires the store.
package history

// Kind identifies what a Record represents when replayed against the line
// store. The interpretation of a given Kind differs depending on whether it
// is being replayed as an undo step or a redo step; Kind alone does not
// carry that direction.
type Kind int

const (
	// Overwrite sets a line to a payload, or is a no-op sentinel when
	// KBegin is -1.
	Overwrite Kind = iota
	// Remove deletes a line without renumbering.
	Remove
	// Shift renumbers every line at or beyond a boundary by a fixed
	// delta derived from KBegin/KEnd.
	Shift
)

// Record is one primitive history entry. All records emitted by a single
// user command share GroupID, so undo/redo can replay the whole command as
// one logical step.
type Record struct {
	Kind         Kind
	KBegin, KEnd int
	GroupID      int
	Payload      []byte
}

// Sentinel reports whether r is the sentinel record emitted when a user
// command targeted a line that did not exist. Replaying a sentinel is
// always a no-op.
func (r Record) Sentinel() bool {
	return r.KBegin == -1
}

// NewSentinel returns the sentinel OVERWRITE(-1,-1,gid,nil) record.
func NewSentinel(groupID int) Record {
	return Record{Kind: Overwrite, KBegin: -1, KEnd: -1, GroupID: groupID}
}
