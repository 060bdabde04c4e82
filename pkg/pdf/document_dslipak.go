package pdf

import (
	"fmt"

	gopdf "github.com/dslipak/pdf"
)

// DsliPakDocument implements the Document interface using dslipak/pdf library
type DsliPakDocument struct {
	reader   *gopdf.Reader
	filepath string
	pages    []Page
}

// OpenWithDslipak opens a PDF file using the dslipak/pdf library
func OpenWithDslipak(filepath string) (Document, error) {
	info, err := Inspect(filepath)
	if err != nil {
		return nil, err
	}
	return openDslipak(filepath, info.PageDims)
}

func openDslipak(filepath string, dims []BoundingBox) (Document, error) {
	r, err := gopdf.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with dslipak: %w", err)
	}

	doc := &DsliPakDocument{
		reader:   r,
		filepath: filepath,
	}

	if err := doc.initializePages(dims); err != nil {
		return nil, fmt.Errorf("failed to initialize pages: %w", err)
	}

	return doc, nil
}

// initializePages initializes all pages in the document
func (d *DsliPakDocument) initializePages(dims []BoundingBox) error {
	pageCount := d.reader.NumPage()
	d.pages = make([]Page, pageCount)

	for i := 1; i <= pageCount; i++ {
		var size BoundingBox
		if i <= len(dims) {
			size = dims[i-1]
		}
		page, err := NewDsliPakPage(d.reader, i, size)
		if err != nil {
			return fmt.Errorf("failed to initialize page %d: %w", i, err)
		}
		d.pages[i-1] = page
	}

	return nil
}

// GetPages returns all pages in the document
func (d *DsliPakDocument) GetPages() []Page {
	return d.pages
}

// GetPage returns a specific page by index (0-based)
func (d *DsliPakDocument) GetPage(index int) (Page, error) {
	if index < 0 || index >= len(d.pages) {
		return nil, fmt.Errorf("page index %d out of range [0, %d)", index, len(d.pages))
	}
	return d.pages[index], nil
}

// PageCount returns the total number of pages
func (d *DsliPakDocument) PageCount() int {
	return len(d.pages)
}

// Close releases resources associated with the document
func (d *DsliPakDocument) Close() error {
	d.reader = nil
	d.pages = nil
	return nil
}

// DsliPakPage implements the Page interface using dslipak/pdf
type DsliPakPage struct {
	pageNumber int
	page       gopdf.Page
	width      float64
	height     float64
	objects    Objects
}

// NewDsliPakPage creates a new page using dslipak/pdf.
// An empty size falls back to the (possibly inherited) MediaBox.
func NewDsliPakPage(reader *gopdf.Reader, pageNumber int, size BoundingBox) (Page, error) {
	if pageNumber < 1 || pageNumber > reader.NumPage() {
		return nil, fmt.Errorf("invalid page number: %d", pageNumber)
	}

	page := reader.Page(pageNumber)

	width, height := size.Width(), size.Height()
	if width <= 0 || height <= 0 {
		width, height = dslipakMediaBox(page.V)
	}

	p := &DsliPakPage{
		pageNumber: pageNumber,
		page:       page,
		width:      width,
		height:     height,
	}

	if err := p.extractObjects(); err != nil {
		return nil, fmt.Errorf("failed to extract objects: %w", err)
	}

	return p, nil
}

// extractObjects extracts the text objects of the page
func (p *DsliPakPage) extractObjects() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed content stream on page %d: %v", p.pageNumber, r)
		}
	}()

	content := p.page.Content()
	runs := make([]textRun, 0, len(content.Text))
	for _, text := range content.Text {
		runs = append(runs, textRun{
			S:        text.S,
			Font:     text.Font,
			FontSize: text.FontSize,
			X:        text.X,
			Y:        text.Y,
			W:        text.W,
		})
	}

	p.objects = Objects{Chars: charsFromRuns(runs, p.height)}
	return nil
}

// GetPageNumber returns the page number (1-based)
func (p *DsliPakPage) GetPageNumber() int {
	return p.pageNumber
}

// GetWidth returns the page width
func (p *DsliPakPage) GetWidth() float64 {
	return p.width
}

// GetHeight returns the page height
func (p *DsliPakPage) GetHeight() float64 {
	return p.height
}

// GetBBox returns the page bounding box
func (p *DsliPakPage) GetBBox() BoundingBox {
	return BoundingBox{X0: 0, Y0: 0, X1: p.width, Y1: p.height}
}

// GetObjects returns all objects on the page
func (p *DsliPakPage) GetObjects() Objects {
	return p.objects
}

// ExtractWords extracts individual words from the page
func (p *DsliPakPage) ExtractWords(opts ...WordExtractionOption) []Word {
	return extractWords(p.objects.Chars, opts...)
}

func dslipakMediaBox(v gopdf.Value) (float64, float64) {
	for ; v.Kind() == gopdf.Dict; v = v.Key("Parent") {
		box := v.Key("MediaBox")
		if box.Kind() == gopdf.Array && box.Len() == 4 {
			return box.Index(2).Float64() - box.Index(0).Float64(),
				box.Index(3).Float64() - box.Index(1).Float64()
		}
	}
	return letterWidth, letterHeight
}
