package render

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"codeberg.org/go-pdf/fpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/sirupsen/logrus"

	"github.com/pyhub-apps/packlist/pkg/block"
	"github.com/pyhub-apps/packlist/pkg/output"
)

// Renderer draws block sequences onto fixed-size pages
type Renderer struct {
	Log      logrus.FieldLogger
	PageSize string // fpdf size name, A4 when empty
}

// NewRenderer creates an A4 renderer
func NewRenderer(log logrus.FieldLogger) *Renderer {
	return &Renderer{Log: log, PageSize: "A4"}
}

// Render writes blocks to path. Each block's text baseline is placed at (X, Y)
// measured from the top-left corner; a new page starts whenever the block's
// source page changes. The written file is validated with pdfcpu.
func (r *Renderer) Render(blocks block.Sequence, path string) error {
	if len(blocks) == 0 {
		return errors.New("no blocks to render")
	}

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		SizeStr:        r.pageSize(),
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	tr := doc.UnicodeTranslatorFromDescriptor("")

	page := 0
	for _, b := range blocks {
		if doc.PageNo() == 0 || b.Page != page {
			doc.AddPage()
			page = b.Page
		}
		face := ResolveFont(b.Font)
		doc.SetFont(face.Family, face.Style, fontSize(b.FontSize))
		doc.Text(b.X, b.Y, tr(b.Text))
	}

	if err := writeFile(doc, path); err != nil {
		return err
	}

	if err := api.ValidateFile(path, nil); err != nil {
		return fmt.Errorf("rendered PDF failed validation: %w", err)
	}

	r.logger().WithFields(logrus.Fields{
		"path":   path,
		"blocks": len(blocks),
		"pages":  doc.PageNo(),
	}).Info("rendered PDF")
	return nil
}

func (r *Renderer) pageSize() string {
	if r.PageSize == "" {
		return "A4"
	}
	return r.PageSize
}

func (r *Renderer) logger() logrus.FieldLogger {
	if r.Log == nil {
		return logrus.StandardLogger()
	}
	return r.Log
}

// writeFile creates the parent directory and writes doc to path
func writeFile(doc *fpdf.Fpdf, path string) error {
	if err := doc.Error(); err != nil {
		return fmt.Errorf("failed to build PDF: %w", err)
	}
	if err := output.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := doc.OutputFileAndClose(path); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("%w: cannot write %s", output.ErrPermission, path)
		}
		return fmt.Errorf("failed to write PDF %s: %w", path, err)
	}
	return nil
}
