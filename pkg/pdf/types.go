package pdf

import (
	"errors"
	"math"
	"strings"
)

// ErrInputNotFound is returned when an input file does not exist
var ErrInputNotFound = errors.New("input file not found")

// BoundingBox represents a rectangular area with coordinates.
// Y grows downward from the top edge of the page, as in pdfplumber.
type BoundingBox struct {
	X0 float64 // Left
	Y0 float64 // Top
	X1 float64 // Right
	Y1 float64 // Bottom
}

// Width returns the width of the bounding box
func (b BoundingBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the height of the bounding box
func (b BoundingBox) Height() float64 {
	return b.Y1 - b.Y0
}

// Union returns the smallest bounding box containing both boxes
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	return BoundingBox{
		X0: math.Min(b.X0, other.X0),
		Y0: math.Min(b.Y0, other.Y0),
		X1: math.Max(b.X1, other.X1),
		Y1: math.Max(b.Y1, other.Y1),
	}
}

// Objects represents the collection of objects found on a page
type Objects struct {
	Chars []CharObject
}

// CharObject represents a character in the PDF
type CharObject struct {
	Text     string
	Font     string
	FontSize float64
	X0       float64
	Y0       float64
	X1       float64
	Y1       float64
	Width    float64
	Height   float64
}

// GetBBox returns the character's bounding box
func (c CharObject) GetBBox() BoundingBox {
	return BoundingBox{X0: c.X0, Y0: c.Y0, X1: c.X1, Y1: c.Y1}
}

// IsSpace reports whether the character only carries whitespace
func (c CharObject) IsSpace() bool {
	return strings.TrimSpace(c.Text) == ""
}

// Word represents a run of characters on one line without a gap between them
type Word struct {
	Text       string
	X0         float64
	Y0         float64 // Top
	X1         float64
	Y1         float64 // Bottom
	Characters []CharObject
}

// GetBBox returns the word's bounding box
func (w Word) GetBBox() BoundingBox {
	return BoundingBox{X0: w.X0, Y0: w.Y0, X1: w.X1, Y1: w.Y1}
}

// Font returns the font name of the word's first character
func (w Word) Font() string {
	if len(w.Characters) == 0 {
		return ""
	}
	return w.Characters[0].Font
}

// FontSize returns the font size of the word's first character
func (w Word) FontSize() float64 {
	if len(w.Characters) == 0 {
		return 0
	}
	return w.Characters[0].FontSize
}

// WordExtractionOption is a function that modifies word extraction behavior
type WordExtractionOption func(*wordExtractionConfig)

type wordExtractionConfig struct {
	XTolerance float64
	YTolerance float64
}

// WithWordXTolerance sets the horizontal gap that separates two words
func WithWordXTolerance(tolerance float64) WordExtractionOption {
	return func(c *wordExtractionConfig) {
		c.XTolerance = tolerance
	}
}

// WithWordYTolerance sets the vertical tolerance for grouping characters into one line
func WithWordYTolerance(tolerance float64) WordExtractionOption {
	return func(c *wordExtractionConfig) {
		c.YTolerance = tolerance
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
