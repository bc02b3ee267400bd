package reader

import (
	"fmt"
	"io"

	lpdf "github.com/ledongthuc/pdf"
)

// ledongthucBackend produces page text via github.com/ledongthuc/pdf.
type ledongthucBackend struct {
	file   io.Closer
	reader *lpdf.Reader
}

func openLedongthuc(filename string) (backend, error) {
	f, r, err := lpdf.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("ledongthuc: %w", err)
	}
	return &ledongthucBackend{file: f, reader: r}, nil
}

func (b *ledongthucBackend) name() string {
	return "ledongthuc"
}

func (b *ledongthucBackend) pageCount() int {
	return b.reader.NumPage()
}

func (b *ledongthucBackend) pageText(pageIndex int) (string, error) {
	page := b.reader.Page(pageIndex + 1)
	if page.V.IsNull() {
		return "", fmt.Errorf("ledongthuc: page %d is missing", pageIndex+1)
	}

	text, err := page.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("ledongthuc: extracting page %d: %w", pageIndex+1, err)
	}
	return text, nil
}

func (b *ledongthucBackend) close() error {
	if b.file != nil {
		return b.file.Close()
	}
	return nil
}
