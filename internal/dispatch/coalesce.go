package dispatch

import "github.com/linedit/lineed/internal/parser"

// coalesce folds a run of UNDO/REDO commands - starting with first, which
// has already been read off the stream - into a single signed step count
// against the history, without executing any of them individually. It
// stops at the first non-UNDO/REDO command (or EOF) and returns that
// command (or the error that ended the stream) alongside the accumulated
// delta.
//
// Positive delta means net undo; negative means net redo. u and r track
// the tentative group counts as the run is folded, clamping each
// UNDO(n)/REDO(n) to what's tentatively available so the final delta never
// overshoots the real history.
func (d *Dispatcher) coalesce(first parser.Command, p *parser.Reader) (delta int, next parser.Command, err error) {
	u := d.hist.UndoGroups()
	r := d.hist.RedoGroups()

	cmd := first

	for {
		switch cmd.Kind {
		case parser.Undo:
			x := min(cmd.A, u)
			delta += x
			u -= x
			r += x
		case parser.Redo:
			x := min(cmd.A, r)
			delta -= x
			r -= x
			u += x
		default:
			return delta, cmd, nil
		}

		cmd, err = p.Next()
		if err != nil {
			return delta, parser.Command{}, err
		}
	}
}
