// Package block defines the content block, the unit every packing-list stage works on.
package block

import (
	"strings"

	"github.com/pyhub-apps/packlist/pkg/pdf"
)

// Block is one extracted line of text with its page, position and font
type Block struct {
	ID       int
	Page     int // 1-based
	Text     string
	Font     string
	FontSize float64
	X        float64
	Y        float64 // Distance from the top edge of the page
	Width    float64
	BBox     pdf.BoundingBox
}

// Sequence is an ordered list of blocks
type Sequence []Block

// Renumber assigns dense zero-based ids in the current order
func (s Sequence) Renumber() {
	for i := range s {
		s[i].ID = i
	}
}

// Clone returns a copy of the sequence that can be mutated independently
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// Without returns the blocks whose ids are not in ids, renumbered
func (s Sequence) Without(ids map[int]bool) Sequence {
	out := make(Sequence, 0, len(s))
	for _, b := range s {
		if !ids[b.ID] {
			out = append(out, b)
		}
	}
	out.Renumber()
	return out
}

// IndexOfText returns the index of the first block whose trimmed text equals text, or -1
func (s Sequence) IndexOfText(text string) int {
	for i, b := range s {
		if strings.TrimSpace(b.Text) == text {
			return i
		}
	}
	return -1
}

// Texts returns the text of every block, in order
func (s Sequence) Texts() []string {
	out := make([]string, len(s))
	for i, b := range s {
		out[i] = b.Text
	}
	return out
}

// Dense reports whether ids are exactly 0..len-1 in order
func (s Sequence) Dense() bool {
	for i, b := range s {
		if b.ID != i {
			return false
		}
	}
	return true
}
