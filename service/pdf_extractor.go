package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/finscan/finscan/utils/docscan"
)

// Word positions closer than wordGap belong to the same run of text;
// a horizontal jump past cellGap starts a new table cell.
const (
	wordGap = 1.0
	cellGap = 12.0
)

type pdfExtractor struct{}

// NewPDFExtractor returns the extractor for text-based PDFs. Scanned,
// image-only PDFs are out of scope: pages without extractable text are
// skipped, not OCRed.
func NewPDFExtractor() PageExtractor {
	return &pdfExtractor{}
}

func (p *pdfExtractor) ExtractPages(data []byte, password string) ([]docscan.Page, error) {
	// ledongthuc/pdf cannot open encrypted files; pdfcpu decrypts first.
	if password != "" {
		conf := model.NewDefaultConfiguration()
		conf.UserPW = password
		var buf bytes.Buffer
		if err := api.Decrypt(bytes.NewReader(data), &buf, conf); err != nil {
			return nil, fmt.Errorf("decrypt pdf: %w", err)
		}
		data = buf.Bytes()
	}

	if err := api.Validate(bytes.NewReader(data), model.NewDefaultConfiguration()); err != nil {
		return nil, fmt.Errorf("validate pdf: %w", err)
	}

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}

	var pages []docscan.Page
	totalPages := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPages; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			// An unparseable page is skipped; the walk carries on.
			continue
		}

		var b blockBuilder
		for _, row := range rows {
			cells := splitRowCells(row.Content)
			switch len(cells) {
			case 0:
				// blank visual row
			case 1:
				b.addLine(cells[0])
			default:
				b.addRow(cells)
			}
		}

		blocks := b.done()
		if len(blocks) == 0 {
			continue
		}
		pages = append(pages, docscan.Page{Number: pageIndex, Blocks: blocks})
	}

	return pages, nil
}

// splitRowCells groups the positioned text fragments of one visual row into
// cells. Fragments arrive sorted left to right, often one glyph at a time,
// so small gaps join, medium gaps become spaces and large gaps split cells.
func splitRowCells(fragments []pdf.Text) []string {
	var cells []string
	var cell strings.Builder
	cursor := 0.0

	flushCell := func() {
		if s := strings.TrimSpace(cell.String()); s != "" {
			cells = append(cells, s)
		}
		cell.Reset()
	}

	for i, frag := range fragments {
		if frag.S == "" {
			continue
		}
		if i > 0 {
			gap := frag.X - cursor
			if gap > cellGap {
				flushCell()
			} else if gap > wordGap {
				cell.WriteByte(' ')
			}
		}
		cell.WriteString(frag.S)
		cursor = frag.X + frag.W
	}
	flushCell()

	return cells
}
