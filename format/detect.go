// Package format provides file format detection for the pdfmax library.
package format

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format represents a recognized document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
)

// String returns the string representation of the format.
func (f Format) String() string {
	if f == PDF {
		return "PDF"
	}
	return "Unknown"
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	if f == PDF {
		return ".pdf"
	}
	return ""
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	if strings.ToLower(filepath.Ext(filename)) == ".pdf" {
		return PDF
	}
	return Unknown
}

// DetectFromMagic checks file magic bytes to determine format.
// This provides more reliable detection than extension-based detection.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	// PDF magic: %PDF
	if data[0] == '%' && data[1] == 'P' && data[2] == 'D' && data[3] == 'F' {
		return PDF
	}

	return Unknown
}

// DetectFile opens the file and combines magic-byte detection with the
// extension fallback. Magic bytes win when the two disagree.
func DetectFile(filename string) (Format, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Unknown, err
	}
	defer f.Close()

	magic := make([]byte, 4)
	n, err := io.ReadFull(f, magic)
	if err != nil && n < 4 {
		return Detect(filename), nil
	}

	if format := DetectFromMagic(magic[:n]); format != Unknown {
		return format, nil
	}

	return Detect(filename), nil
}
