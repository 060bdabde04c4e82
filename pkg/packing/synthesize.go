package packing

import (
	"fmt"

	"github.com/pyhub-apps/packlist/pkg/block"
	"github.com/pyhub-apps/packlist/pkg/config"
)

// Synthesis is the sequence after rewrites, insertions and deletions
type Synthesis struct {
	Blocks        block.Sequence
	HeaderIndex   int
	CustomerIndex int
}

// Synthesize applies the rewrites, inserts the region and country blocks right
// before the header, drops the delete-set and renumbers the survivors.
// The input sequence is not modified.
func Synthesize(seq block.Sequence, cls Classification, sel Selection, tmpl config.Template) (Synthesis, error) {
	anchors := []struct {
		role  string
		index int
		keep  bool // must survive the delete-set
	}{
		{RoleOrder, tmpl.OrderIndex, true},
		{RoleShipTo, tmpl.ShipToIndex, false},
		{RoleCustomer, tmpl.CustomerIndex, true},
		{RoleHeader, cls.HeaderIndex, true},
		{RolePredecessor, cls.HeaderIndex - 1, false},
	}
	for _, a := range anchors {
		if a.index < 0 || a.index >= len(seq) {
			return Synthesis{}, &AnchorError{Role: a.role, Detail: fmt.Sprintf("index %d outside %d blocks", a.index, len(seq))}
		}
		if a.keep && sel.Delete[seq[a.index].ID] {
			return Synthesis{}, &AnchorError{Role: a.role, Detail: "selected for deletion"}
		}
	}

	work := seq.Clone()
	for _, rw := range sel.Rewrites {
		if rw.Index >= 0 && rw.Index < len(work) {
			work[rw.Index].Text = rw.Text
		}
	}

	header := &work[cls.HeaderIndex]
	header.Text = tmpl.HeaderLabel
	header.X += tmpl.HeaderDX

	shipTo := work[tmpl.ShipToIndex]
	customer := work[tmpl.CustomerIndex]
	predecessor := work[cls.HeaderIndex-1]

	region := block.Block{
		ID:       -1,
		Page:     shipTo.Page,
		Text:     tmpl.RegionLabel,
		Font:     shipTo.Font,
		FontSize: shipTo.FontSize,
		X:        shipTo.X + tmpl.RegionDX,
		Y:        shipTo.Y,
		Width:    shipTo.Width,
	}
	country := block.Block{
		ID:       -1,
		Page:     customer.Page,
		Text:     predecessor.Text,
		Font:     customer.Font,
		FontSize: customer.FontSize,
		X:        region.X,
		Y:        region.Y + tmpl.CountryDY,
		Width:    customer.Width,
	}

	work = append(work[:cls.HeaderIndex], append(block.Sequence{region, country}, work[cls.HeaderIndex:]...)...)
	headerAt, customerAt := cls.HeaderIndex+2, tmpl.CustomerIndex
	if customerAt >= cls.HeaderIndex {
		customerAt += 2
	}

	return Synthesis{
		Blocks:        work.Without(sel.Delete),
		HeaderIndex:   survivorsBefore(work, headerAt, sel.Delete),
		CustomerIndex: survivorsBefore(work, customerAt, sel.Delete),
	}, nil
}

// survivorsBefore is the index the block at i takes once the delete-set is dropped
func survivorsBefore(seq block.Sequence, i int, del map[int]bool) int {
	n := 0
	for _, b := range seq[:i] {
		if !del[b.ID] {
			n++
		}
	}
	return n
}
