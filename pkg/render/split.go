package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"codeberg.org/go-pdf/fpdf"
	"codeberg.org/go-pdf/fpdf/contrib/gofpdi"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/sirupsen/logrus"

	"github.com/pyhub-apps/packlist/pkg/pdf"
)

// Splitter cuts every page of a PDF into a top half and a bottom half
type Splitter struct {
	Log logrus.FieldLogger
}

// NewSplitter creates a splitter
func NewSplitter(log logrus.FieldLogger) *Splitter {
	return &Splitter{Log: log}
}

// SplitPath returns the output path for the split copy of src inside dir
func SplitPath(src, dir string) string {
	name := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	return filepath.Join(dir, name+".pdf")
}

// Split writes each page of src to dst as two half-height pages, the upper half
// followed by the lower half. Half pages keep the source width.
func (s *Splitter) Split(src, dst string) error {
	if sameFile(src, dst) {
		return fmt.Errorf("output %s must differ from input", dst)
	}
	dims, err := pageDims(src)
	if err != nil {
		return err
	}

	doc := newImportDoc()
	importer := gofpdi.NewImporter()
	for i, dim := range dims {
		w, h := dim.Width(), dim.Height()
		tpl := -1
		for _, y := range []float64{0, -h / 2} {
			doc.AddPageFormat("P", fpdf.SizeType{Wd: w, Ht: h / 2})
			if tpl < 0 {
				tpl = importer.ImportPage(doc, src, i+1, "/MediaBox")
			}
			importer.UseImportedTemplate(doc, tpl, 0, y, w, h)
		}
	}
	if err := writeFile(doc, dst); err != nil {
		return err
	}

	s.logger().WithFields(logrus.Fields{
		"source": src,
		"output": dst,
		"pages":  2 * len(dims),
	}).Info("split PDF into half pages")
	return nil
}

func (s *Splitter) logger() logrus.FieldLogger {
	if s.Log == nil {
		return logrus.StandardLogger()
	}
	return s.Log
}

func newImportDoc() *fpdf.Fpdf {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	return doc
}

// pageDims checks that path exists and returns the size of each of its pages
func pageDims(path string) ([]pdf.BoundingBox, error) {
	if _, err := pdf.Inspect(path); err != nil {
		return nil, err
	}
	dims, err := api.PageDimsFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read page dimensions: %w", err)
	}
	if len(dims) == 0 {
		return nil, fmt.Errorf("no pages in %s", path)
	}

	boxes := make([]pdf.BoundingBox, len(dims))
	for i, dim := range dims {
		boxes[i] = pdf.BoundingBox{X1: dim.Width, Y1: dim.Height}
	}
	return boxes, nil
}
