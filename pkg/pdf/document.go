package pdf

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// US Letter in points, used when a page carries no MediaBox at all
const (
	letterWidth  = 612.0
	letterHeight = 792.0
)

// Info describes a PDF file as seen by pdfcpu
type Info struct {
	Path      string
	PageCount int
	PageDims  []BoundingBox
}

// Inspect reads and validates a PDF file with pdfcpu and reports its page geometry
func Inspect(filepath string) (Info, error) {
	if _, err := os.Stat(filepath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Info{}, fmt.Errorf("%w: %s", ErrInputNotFound, filepath)
		}
		return Info{}, fmt.Errorf("failed to stat file: %w", err)
	}

	// Parse PDF with pdfcpu
	ctx, err := api.ReadContextFile(filepath)
	if err != nil {
		return Info{}, fmt.Errorf("failed to read PDF context: %w", err)
	}

	// Validate the PDF
	if err := api.ValidateContext(ctx); err != nil {
		return Info{}, fmt.Errorf("invalid PDF: %w", err)
	}

	dims, err := ctx.PageDims()
	if err != nil {
		return Info{}, fmt.Errorf("failed to get page dimensions: %w", err)
	}

	info := Info{
		Path:      filepath,
		PageCount: ctx.PageCount,
		PageDims:  make([]BoundingBox, len(dims)),
	}
	for i, dim := range dims {
		info.PageDims[i] = BoundingBox{X1: dim.Width, Y1: dim.Height}
	}

	return info, nil
}

// Open validates a PDF file and opens it for text extraction.
// The ledongthuc reader is tried first as it has the most accurate text extraction,
// dslipak is the fallback.
// Page sizes come from pdfcpu, which resolves MediaBox inheritance.
func Open(filepath string) (Document, error) {
	info, err := Inspect(filepath)
	if err != nil {
		return nil, err
	}

	doc, err := openLedongthuc(filepath, info.PageDims)
	if err == nil {
		return doc, nil
	}

	doc, fallbackErr := openDslipak(filepath, info.PageDims)
	if fallbackErr == nil {
		return doc, nil
	}

	return nil, errors.Join(err, fallbackErr)
}
