package render

import (
	"errors"
	"fmt"
	"path/filepath"

	"codeberg.org/go-pdf/fpdf"
	"codeberg.org/go-pdf/fpdf/contrib/gofpdi"
	"github.com/sirupsen/logrus"

	"github.com/pyhub-apps/packlist/pkg/block"
	"github.com/pyhub-apps/packlist/pkg/pdf"
)

// EditKind tells whether an edit removes a block or replaces its text
type EditKind int

const (
	// EditDelete covers the block with a white rectangle
	EditDelete EditKind = iota
	// EditReplace covers the block and draws new text in its place
	EditReplace
)

func (k EditKind) String() string {
	switch k {
	case EditDelete:
		return "delete"
	case EditReplace:
		return "replace"
	default:
		return fmt.Sprintf("EditKind(%d)", int(k))
	}
}

// Edit is one change to an existing page
type Edit struct {
	Kind EditKind
	Page int // 1-based
	BBox pdf.BoundingBox
	Text string // replacement text, EditReplace only
}

// NewEdit builds an edit covering b
func NewEdit(b block.Block, kind EditKind, text string) Edit {
	return Edit{Kind: kind, Page: b.Page, BBox: b.BBox, Text: text}
}

// Overlay paints edits on top of the pages of an existing PDF
type Overlay struct {
	Log        logrus.FieldLogger
	FontSize   float64
	TextOffset float64 // replacement baseline sits TextOffset above the block top
}

// NewOverlay creates an overlay drawing replacements at 12pt
func NewOverlay(log logrus.FieldLogger) *Overlay {
	return &Overlay{Log: log, FontSize: 12}
}

// Apply copies every page of src to dst and paints the edits over them
func (o *Overlay) Apply(src, dst string, edits []Edit) error {
	if sameFile(src, dst) {
		return fmt.Errorf("output %s must differ from input", dst)
	}
	dims, err := pageDims(src)
	if err != nil {
		return err
	}
	for _, e := range edits {
		if e.Page < 1 || e.Page > len(dims) {
			return fmt.Errorf("edit on page %d outside %d pages", e.Page, len(dims))
		}
		if e.Kind == EditReplace && e.Text == "" {
			return errors.New("replace edit without text")
		}
	}

	doc := newImportDoc()
	importer := gofpdi.NewImporter()
	tr := doc.UnicodeTranslatorFromDescriptor("")

	for i, dim := range dims {
		w, h := dim.Width(), dim.Height()
		doc.AddPageFormat("P", fpdf.SizeType{Wd: w, Ht: h})
		tpl := importer.ImportPage(doc, src, i+1, "/MediaBox")
		importer.UseImportedTemplate(doc, tpl, 0, 0, w, h)

		for _, e := range edits {
			if e.Page != i+1 {
				continue
			}
			doc.SetFillColor(255, 255, 255)
			doc.Rect(e.BBox.X0, e.BBox.Y0, e.BBox.Width(), e.BBox.Height(), "F")
			if e.Kind == EditReplace {
				doc.SetTextColor(0, 0, 0)
				doc.SetFont(fallbackFace.Family, fallbackFace.Style, fontSize(o.FontSize))
				doc.Text(e.BBox.X0, e.BBox.Y0-o.TextOffset, tr(e.Text))
			}
		}
	}

	if err := writeFile(doc, dst); err != nil {
		return err
	}

	o.logger().WithFields(logrus.Fields{
		"source": src,
		"output": dst,
		"edits":  len(edits),
	}).Info("applied edits")
	return nil
}

func (o *Overlay) logger() logrus.FieldLogger {
	if o.Log == nil {
		return logrus.StandardLogger()
	}
	return o.Log
}

func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
