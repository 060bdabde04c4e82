package pdf

import (
	"fmt"
	"io"

	lpdf "github.com/ledongthuc/pdf"
)

// LedongthucDocument implements the Document interface using ledongthuc/pdf library
type LedongthucDocument struct {
	file     io.Closer
	reader   *lpdf.Reader
	filepath string
	pages    []Page
}

// OpenWithLedongthuc opens a PDF file using the ledongthuc/pdf library
func OpenWithLedongthuc(filepath string) (Document, error) {
	info, err := Inspect(filepath)
	if err != nil {
		return nil, err
	}
	return openLedongthuc(filepath, info.PageDims)
}

// openLedongthuc opens a PDF file whose page sizes pdfcpu already resolved
func openLedongthuc(filepath string, dims []BoundingBox) (Document, error) {
	f, r, err := lpdf.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with ledongthuc: %w", err)
	}

	doc := &LedongthucDocument{
		file:     f,
		reader:   r,
		filepath: filepath,
	}

	if err := doc.initializePages(dims); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to initialize pages: %w", err)
	}

	return doc, nil
}

// initializePages initializes all pages in the document
func (d *LedongthucDocument) initializePages(dims []BoundingBox) error {
	pageCount := d.reader.NumPage()
	d.pages = make([]Page, pageCount)

	for i := 1; i <= pageCount; i++ {
		var size BoundingBox
		if i <= len(dims) {
			size = dims[i-1]
		}
		page, err := NewLedongthucPage(d.reader, i, size)
		if err != nil {
			return fmt.Errorf("failed to initialize page %d: %w", i, err)
		}
		d.pages[i-1] = page
	}

	return nil
}

// GetPages returns all pages in the document
func (d *LedongthucDocument) GetPages() []Page {
	return d.pages
}

// GetPage returns a specific page by index (0-based)
func (d *LedongthucDocument) GetPage(index int) (Page, error) {
	if index < 0 || index >= len(d.pages) {
		return nil, fmt.Errorf("page index %d out of range [0, %d)", index, len(d.pages))
	}
	return d.pages[index], nil
}

// PageCount returns the total number of pages
func (d *LedongthucDocument) PageCount() int {
	return len(d.pages)
}

// Close releases resources associated with the document
func (d *LedongthucDocument) Close() error {
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}

// LedongthucPage implements the Page interface using ledongthuc/pdf
type LedongthucPage struct {
	pageNumber int
	page       lpdf.Page
	width      float64
	height     float64
	objects    Objects
}

// NewLedongthucPage creates a new page using ledongthuc/pdf.
// size is the page size reported by pdfcpu; when it is empty the MediaBox is
// looked up on the page and its ancestors in the page tree.
func NewLedongthucPage(reader *lpdf.Reader, pageNumber int, size BoundingBox) (Page, error) {
	if pageNumber < 1 || pageNumber > reader.NumPage() {
		return nil, fmt.Errorf("invalid page number: %d", pageNumber)
	}

	page := reader.Page(pageNumber)

	width, height := size.Width(), size.Height()
	if width <= 0 || height <= 0 {
		width, height = ledongthucMediaBox(page.V)
	}

	p := &LedongthucPage{
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

// extractObjects extracts the text objects of the page.
// The reader panics on malformed content streams, so the panic is turned into an error.
func (p *LedongthucPage) extractObjects() (err error) {
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
func (p *LedongthucPage) GetPageNumber() int {
	return p.pageNumber
}

// GetWidth returns the page width
func (p *LedongthucPage) GetWidth() float64 {
	return p.width
}

// GetHeight returns the page height
func (p *LedongthucPage) GetHeight() float64 {
	return p.height
}

// GetBBox returns the page bounding box
func (p *LedongthucPage) GetBBox() BoundingBox {
	return BoundingBox{X0: 0, Y0: 0, X1: p.width, Y1: p.height}
}

// GetObjects returns all objects on the page
func (p *LedongthucPage) GetObjects() Objects {
	return p.objects
}

// ExtractWords extracts individual words from the page
func (p *LedongthucPage) ExtractWords(opts ...WordExtractionOption) []Word {
	return extractWords(p.objects.Chars, opts...)
}

// ledongthucMediaBox returns the size of the nearest MediaBox, which pages may
// inherit from a parent node. US Letter is assumed when there is none.
func ledongthucMediaBox(v lpdf.Value) (float64, float64) {
	for ; v.Kind() == lpdf.Dict; v = v.Key("Parent") {
		box := v.Key("MediaBox")
		if box.Kind() == lpdf.Array && box.Len() == 4 {
			// MediaBox is [x0, y0, x1, y1]
			return box.Index(2).Float64() - box.Index(0).Float64(),
				box.Index(3).Float64() - box.Index(1).Float64()
		}
	}
	return letterWidth, letterHeight
}
