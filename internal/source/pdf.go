package source

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

// FitzPDFSource renders one page of a PDF as the still image.
type FitzPDFSource struct {
	doc  *fitz.Document
	path string
	page int
	dpi  int
}

func NewFitzPDFSource(path string, page, dpi int) (*FitzPDFSource, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if page < 0 || page >= doc.NumPage() {
		doc.Close()
		return nil, fmt.Errorf("%w: page %d out of range (document has %d)", ErrInvalidImage, page, doc.NumPage())
	}
	return &FitzPDFSource{doc: doc, path: path, page: page, dpi: dpi}, nil
}

func (f *FitzPDFSource) Dimensions() (int, int, error) {
	img, err := f.Image()
	if err != nil {
		return 0, 0, err
	}
	b := img.Bounds()
	return b.Dx(), b.Dy(), nil
}

func (f *FitzPDFSource) Image() (image.Image, error) {
	// go-fitz documents are not safe for concurrent use; open a fresh one per render.
	doc, err := fitz.New(f.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	defer doc.Close()

	img, err := doc.ImageDPI(f.page, float64(f.dpi))
	if err != nil {
		return nil, fmt.Errorf("%w: render page %d: %v", ErrInvalidImage, f.page, err)
	}
	if img.Bounds().Dx() <= 0 || img.Bounds().Dy() <= 0 {
		return nil, fmt.Errorf("%w: zero-area page %d", ErrInvalidImage, f.page)
	}
	return img, nil
}

func (f *FitzPDFSource) Close() error {
	return f.doc.Close()
}
