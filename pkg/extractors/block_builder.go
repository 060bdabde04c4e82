package extractors

import (
	"math"
	"strings"

	"github.com/pyhub-apps/packlist/pkg/block"
	"github.com/pyhub-apps/packlist/pkg/pdf"
)

// DefaultLineTolerance is the largest vertical distance between two words of one block
const DefaultLineTolerance = 5.0

// BlockBuilder organizes the words of a page into content blocks, one per text line
type BlockBuilder struct {
	tolerance float64 // Vertical tolerance for merging consecutive words
	wordOpts  []pdf.WordExtractionOption
}

// NewBlockBuilder creates a block builder with the default tolerance
func NewBlockBuilder(opts ...pdf.WordExtractionOption) *BlockBuilder {
	return &BlockBuilder{
		tolerance: DefaultLineTolerance,
		wordOpts:  opts,
	}
}

// SetTolerance sets the vertical tolerance for block grouping
func (bb *BlockBuilder) SetTolerance(tolerance float64) {
	bb.tolerance = tolerance
}

// Group merges consecutive words into blocks. A word whose top differs from the
// top edge of the block being built by more than the tolerance starts a new block.
// The returned blocks carry no ids.
func (bb *BlockBuilder) Group(page int, words []pdf.Word) block.Sequence {
	var blocks block.Sequence
	var current []pdf.Word
	var top float64

	flush := func() {
		if len(current) == 0 {
			return
		}
		if b, ok := newBlock(page, current); ok {
			blocks = append(blocks, b)
		}
		current = nil
	}

	for _, word := range words {
		if len(current) > 0 && abs(word.Y0-top) > bb.tolerance {
			flush()
		}
		if len(current) == 0 || word.Y0 < top {
			top = word.Y0
		}
		current = append(current, word)
	}
	flush()

	return blocks
}

// Extract builds the block sequence of a whole document, ids assigned across pages
func (bb *BlockBuilder) Extract(doc pdf.Document) block.Sequence {
	var seq block.Sequence
	for _, page := range doc.GetPages() {
		words := page.ExtractWords(bb.wordOpts...)
		seq = append(seq, bb.Group(page.GetPageNumber(), words)...)
	}
	seq.Renumber()
	return seq
}

// newBlock builds one block from grouped words; whitespace-only text yields no block
func newBlock(page int, words []pdf.Word) (block.Block, bool) {
	parts := make([]string, 0, len(words))
	bbox := words[0].GetBBox()
	for _, w := range words {
		parts = append(parts, w.Text)
		bbox = bbox.Union(w.GetBBox())
	}

	text := strings.TrimSpace(strings.Join(parts, " "))
	if text == "" {
		return block.Block{}, false
	}

	return block.Block{
		Page:     page,
		Text:     text,
		Font:     words[0].Font(),
		FontSize: round(words[0].FontSize(), 1),
		X:        math.Round(bbox.X0),
		Y:        round(bbox.Y0, 1),
		Width:    round(bbox.Width(), 1),
		BBox:     bbox,
	}, true
}

func round(v float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(v*p) / p
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
