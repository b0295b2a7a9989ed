package service

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/finscan/finscan/utils/docscan"
)

// PageExtractor is the page/table extraction collaborator. Implementations
// return, per page, text lines and table cell grids interleaved in their
// original top-to-bottom order; the engine inspects only text content and
// document order, never layout geometry.
type PageExtractor interface {
	ExtractPages(data []byte, password string) ([]docscan.Page, error)
}

// SupportedExtensions lists file extensions this service can analyze.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".docx":     true,
	".html":     true,
	".htm":      true,
	".md":       true,
	".markdown": true,
	".csv":      true,
	".txt":      true,
}

// ExtractorForFile returns the appropriate extractor for a filename.
func ExtractorForFile(filename string) (PageExtractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return NewPDFExtractor(), nil
	case ".docx":
		return &DOCXExtractor{}, nil
	case ".html", ".htm":
		return &HTMLExtractor{}, nil
	case ".md", ".markdown":
		return &MarkdownExtractor{}, nil
	case ".csv":
		return &CSVExtractor{}, nil
	case ".txt":
		return &TextExtractor{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// blockBuilder assembles a page's blocks, grouping consecutive multi-cell
// rows into tables. A lone multi-cell row is kept as a text line: one row
// cannot carry both a header and values.
type blockBuilder struct {
	blocks  []docscan.Block
	pending [][]string
}

func (b *blockBuilder) addLine(line string) {
	b.flush()
	if strings.TrimSpace(line) != "" {
		b.blocks = append(b.blocks, docscan.TextBlock(line))
	}
}

func (b *blockBuilder) addRow(cells []string) {
	b.pending = append(b.pending, cells)
}

func (b *blockBuilder) flush() {
	switch {
	case len(b.pending) >= 2:
		b.blocks = append(b.blocks, docscan.TableBlock(b.pending))
	case len(b.pending) == 1:
		b.blocks = append(b.blocks, docscan.TextBlock(strings.Join(b.pending[0], "  ")))
	}
	b.pending = nil
}

func (b *blockBuilder) done() []docscan.Block {
	b.flush()
	return b.blocks
}
