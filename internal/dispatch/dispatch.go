// Package dispatch implements the Dispatcher: the component that
// translates parsed commands into line-store primitives while recording
// their inverses in the history, and that coalesces runs of UNDO/REDO
// commands into a single signed step before replaying them.
package dispatch

import (
	"errors"
	"io"

	"github.com/linedit/lineed/internal/history"
	"github.com/linedit/lineed/internal/parser"
	"github.com/linedit/lineed/internal/store"
)

// Dispatcher owns the line store, the undo/redo history, and the
// command-group id allocator.
type Dispatcher struct {
	store *store.Store
	hist  *history.History
	out   io.Writer

	nextGroupID int
}

// New returns a Dispatcher that writes PRINT output to out.
func New(out io.Writer) *Dispatcher {
	return &Dispatcher{
		store:       store.New(),
		hist:        history.New(),
		out:         out,
		nextGroupID: 1,
	}
}

// Run consumes commands from p until QUIT or end of stream, executing each
// against the store and history. It returns nil on a clean QUIT or EOF.
func (d *Dispatcher) Run(p *parser.Reader) error {
	cmd, err := p.Next()

	for {
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if cmd.Kind == parser.Undo || cmd.Kind == parser.Redo {
			var delta int

			delta, cmd, err = d.coalesce(cmd, p)
			d.applyDelta(delta)

			if err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}

			continue
		}

		switch cmd.Kind {
		case parser.Quit:
			return nil
		case parser.Change:
			if err := d.change(cmd, p); err != nil {
				return err
			}
		case parser.Delete:
			d.delete(cmd)
		case parser.Print:
			d.print(cmd)
		}

		cmd, err = p.Next()
	}
}

func (d *Dispatcher) change(cmd parser.Command, p *parser.Reader) error {
	gid := d.nextGroupID

	for k := cmd.A; k <= cmd.B; k++ {
		payload, err := p.ReadPayloadLine()
		if err != nil {
			return err
		}

		prev, existed := d.store.Upsert(k, payload)
		if existed {
			d.hist.Push(history.Record{Kind: history.Overwrite, KBegin: k, KEnd: k, GroupID: gid, Payload: prev})
			d.hist.Push(history.Record{Kind: history.Remove, KBegin: k, KEnd: k, GroupID: gid, Payload: payload})
		} else {
			d.hist.Push(history.Record{Kind: history.Remove, KBegin: k, KEnd: k, GroupID: gid, Payload: payload})
		}
	}

	d.hist.CommitGroup()
	d.nextGroupID++

	return nil
}

func (d *Dispatcher) delete(cmd parser.Command) {
	gid := d.nextGroupID
	n0 := d.store.Size()

	for k := cmd.A; k <= cmd.B; k++ {
		if k < 1 || k > n0 {
			d.hist.Push(history.NewSentinel(gid))
			continue
		}

		prev, _ := d.store.Remove(k)
		d.hist.Push(history.Record{Kind: history.Overwrite, KBegin: k, KEnd: k, GroupID: gid, Payload: prev})
	}

	if cmd.B < n0 {
		d.store.ShiftDown(cmd.A, cmd.B)
		d.hist.Push(history.Record{Kind: history.Shift, KBegin: cmd.A, KEnd: cmd.B, GroupID: gid})
	}

	d.hist.CommitGroup()
	d.nextGroupID++
}

func (d *Dispatcher) print(cmd parser.Command) {
	i, b := cmd.A, cmd.B

	for i < 1 && i <= b {
		_, _ = d.out.Write(dot)
		i++
	}

	if i > b {
		return
	}

	n := d.store.Size()
	if i > n {
		for ; i <= b; i++ {
			_, _ = d.out.Write(dot)
		}
		return
	}

	d.store.Scan(i, b, func(_ int, payload []byte) bool {
		_, _ = d.out.Write(payload)
		return true
	})

	for k := n + 1; k <= b; k++ {
		_, _ = d.out.Write(dot)
	}
}

var dot = []byte(".\n")

// applyUndo interprets one history record in the undo direction.
func (d *Dispatcher) applyUndo(r history.Record) {
	if r.Sentinel() {
		return
	}

	switch r.Kind {
	case history.Overwrite:
		d.store.Upsert(r.KBegin, r.Payload)
	case history.Remove:
		d.store.Remove(r.KBegin)
	case history.Shift:
		d.store.ShiftUp(r.KBegin, r.KEnd)
	}
}

// applyRedo interprets one history record in the redo direction - the
// mirror of applyUndo.
func (d *Dispatcher) applyRedo(r history.Record) {
	if r.Sentinel() {
		return
	}

	switch r.Kind {
	case history.Overwrite:
		d.store.Remove(r.KBegin)
	case history.Remove:
		d.store.Upsert(r.KBegin, r.Payload)
	case history.Shift:
		d.store.ShiftDown(r.KBegin, r.KEnd)
	}
}

func (d *Dispatcher) applyDelta(delta int) {
	switch {
	case delta > 0:
		for i := 0; i < delta; i++ {
			d.hist.UndoStep(d.applyUndo)
		}
	case delta < 0:
		for i := 0; i < -delta; i++ {
			d.hist.RedoStep(d.applyRedo)
		}
	}
}
