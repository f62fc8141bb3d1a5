// Package loader resolves external resources for frame sources: still
// images, rendered PDF pages, synthesized QR codes and text metrics.
// Failures surface as typed errors so effects can propagate them at create
// time instead of rendering a visually wrong frame.
package loader

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/chai2010/webp" // register the webp decoder
	"github.com/disintegration/imaging"
	"github.com/gen2brain/go-fitz"
	qrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrNotFound reports a resource path that does not resolve.
	ErrNotFound = errors.New("loader: resource not found")
	// ErrDecode reports a resource that resolved but could not be decoded.
	ErrDecode = errors.New("loader: decode failed")
)

// pdfDPI is the default render resolution for PDF-backed image layers.
const pdfDPI = 150

// Load decodes the image at path. PDF paths render their first page; all
// raster formats registered with the image package (png, jpeg, gif, webp)
// decode directly.
func Load(path string) (image.Image, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return LoadPDFPage(path, 0, pdfDPI)
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	return img, nil
}

// LoadPDFPage renders one page of a PDF document at the given DPI.
func LoadPDFPage(path string, page int, dpi float64) (image.Image, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	defer doc.Close()

	if page < 0 || page >= doc.NumPage() {
		return nil, fmt.Errorf("%w: %s: page %d out of range", ErrDecode, path, page)
	}

	img, err := doc.ImageDPI(page, dpi)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	return img, nil
}

// QR synthesizes a square QR code image encoding content at size pixels.
func QR(content string, size int) (image.Image, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: qr: empty content", ErrDecode)
	}
	code, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("%w: qr: %v", ErrDecode, err)
	}
	return code.Image(size), nil
}
