package reader

import (
	"fmt"

	dpdf "github.com/dslipak/pdf"
)

// dslipakBackend produces page text via github.com/dslipak/pdf. It is the
// fallback for files the primary backend cannot open.
type dslipakBackend struct {
	reader *dpdf.Reader
}

func openDslipak(filename string) (backend, error) {
	r, err := dpdf.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("dslipak: %w", err)
	}
	return &dslipakBackend{reader: r}, nil
}

func (b *dslipakBackend) name() string {
	return "dslipak"
}

func (b *dslipakBackend) pageCount() int {
	return b.reader.NumPage()
}

func (b *dslipakBackend) pageText(pageIndex int) (string, error) {
	page := b.reader.Page(pageIndex + 1)
	if page.V.IsNull() {
		return "", fmt.Errorf("dslipak: page %d is missing", pageIndex+1)
	}

	text, err := page.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("dslipak: extracting page %d: %w", pageIndex+1, err)
	}
	return text, nil
}

func (b *dslipakBackend) close() error {
	// The dslipak reader owns no separate file handle.
	return nil
}
