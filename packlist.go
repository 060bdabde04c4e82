// Package packlist extracts positioned text blocks from PDFs and turns shipping labels into packing lists
package packlist

import (
	"github.com/pyhub-apps/packlist/pkg/block"
	"github.com/pyhub-apps/packlist/pkg/config"
	"github.com/pyhub-apps/packlist/pkg/extractors"
	"github.com/pyhub-apps/packlist/pkg/packing"
	"github.com/pyhub-apps/packlist/pkg/pdf"
)

// Re-export types from the internal packages for the public API
type (
	Document             = pdf.Document
	Page                 = pdf.Page
	Info                 = pdf.Info
	WordExtractionOption = pdf.WordExtractionOption
	Word                 = pdf.Word
	Objects              = pdf.Objects
	CharObject           = pdf.CharObject
	BoundingBox          = pdf.BoundingBox
	Block                = block.Block
	Sequence             = block.Sequence
	Template             = config.Template
	Pipeline             = packing.Pipeline
	Result               = packing.Result
)

// Re-export option functions and constructors
var (
	WithWordXTolerance = pdf.WithWordXTolerance
	WithWordYTolerance = pdf.WithWordYTolerance
	DefaultTemplate    = config.Default
	LoadTemplate       = config.Load
	NewPipeline        = packing.NewPipeline
)

// Re-export sentinel errors
var (
	ErrInputNotFound = pdf.ErrInputNotFound
	ErrAnchorMissing = packing.ErrAnchorMissing
)

// Open validates a PDF file and returns a Document
func Open(filepath string) (pdf.Document, error) {
	return pdf.Open(filepath)
}

// Inspect reports the page count and page sizes of a PDF file
func Inspect(filepath string) (pdf.Info, error) {
	return pdf.Inspect(filepath)
}

// OpenWithDslipak opens a PDF file using the dslipak/pdf library
func OpenWithDslipak(filepath string) (pdf.Document, error) {
	return pdf.OpenWithDslipak(filepath)
}

// OpenWithLedongthuc opens a PDF file using the ledongthuc/pdf library
// This provides the most accurate text extraction with proper coordinates
func OpenWithLedongthuc(filepath string) (pdf.Document, error) {
	return pdf.OpenWithLedongthuc(filepath)
}

// ExtractBlocks opens a PDF file and returns its content blocks, one per text line
func ExtractBlocks(filepath string, opts ...pdf.WordExtractionOption) (block.Sequence, error) {
	doc, err := pdf.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	return extractors.NewBlockBuilder(opts...).Extract(doc), nil
}
