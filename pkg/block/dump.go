package block

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
)

// WriteDump writes the human-readable metadata dump of a sequence.
// The dump is meant for inspection only; nothing reads it back.
func (s Sequence) WriteDump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, b := range s {
		fmt.Fprintf(bw, "[ID: %d]\n", b.ID)
		fmt.Fprintf(bw, "· page: %d\n", b.Page)
		fmt.Fprintf(bw, "· text: %s\n", b.Text)
		fmt.Fprintf(bw, "· font: %s (%.1fpt)\n", b.Font, b.FontSize)
		fmt.Fprintf(bw, "· position: (%g, %.1f)\n", b.X, b.Y)
		fmt.Fprintf(bw, "· width: %.1f\n\n", b.Width)
	}
	return bw.Flush()
}

// WritePreview writes a numbered preview grouped by page
func (s Sequence) WritePreview(w io.Writer) error {
	bw := bufio.NewWriter(w)
	currentPage := -1
	for i, b := range s {
		if b.Page != currentPage {
			fmt.Fprintf(bw, "\n=== Page %d ===\n", b.Page)
			currentPage = b.Page
		}
		fmt.Fprintf(bw, "[%d] %s\n", i, b.Text)
	}
	return bw.Flush()
}

// Summary returns the block text cut to width display columns
func (b Block) Summary(width int) string {
	return runewidth.Truncate(b.Text, width, "...")
}
