package chart

import (
	"io"
	"os"
	"sync"
	"time"

	"codeberg.org/go-pdf/fpdf"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"
)

// Page is anything that can draw itself onto a full page.
type Page interface {
	Draw(dc draw.Canvas)
}

// Document is a multi-page PDF. Pages are appended in order and the file is
// only produced by WriteTo or Save.
type Document struct {
	canvas *vgpdf.Canvas
	pages  int
}

// documentDate is stamped as creation and modification date of every
// document so that identical input yields identical bytes.
var documentDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

var pinMetadata sync.Once

// NewDocument returns an empty document whose pages are width x height.
func NewDocument(width, height vg.Length) *Document {
	// fpdf reads these package defaults when vgpdf creates its document.
	pinMetadata.Do(func() {
		fpdf.SetDefaultCreationDate(documentDate)
		fpdf.SetDefaultModificationDate(documentDate)
		fpdf.SetDefaultCatalogSort(true)
	})
	return &Document{canvas: vgpdf.New(width, height)}
}

// AddPage draws page onto a new page of the document.
func (d *Document) AddPage(page Page) {
	// vgpdf starts with one blank page.
	if d.pages > 0 {
		d.canvas.NextPage()
	}
	page.Draw(draw.New(d.canvas))
	d.pages++
}

// Pages returns the number of pages added so far.
func (d *Document) Pages() int {
	return d.pages
}

// WriteTo writes the PDF to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return d.canvas.WriteTo(w)
}

// Save writes the PDF to path, replacing any existing file.
func (d *Document) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := d.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
