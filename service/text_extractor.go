package service

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/finscan/finscan/utils/docscan"
)

// TextExtractor handles plain text dumps, e.g. the output of pdftotext.
// Form feeds separate pages; tab-separated lines are treated as table rows
// so column structure survives the round trip through plain text.
type TextExtractor struct{}

func (e *TextExtractor) ExtractPages(data []byte, password string) ([]docscan.Page, error) {
	var pages []docscan.Page

	for i, chunk := range strings.Split(string(data), "\f") {
		var b blockBuilder

		scanner := bufio.NewScanner(strings.NewReader(chunk))
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := scanner.Text()
			if cells := tabCells(line); len(cells) >= 2 {
				b.addRow(cells)
			} else {
				b.addLine(line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("scan text: %w", err)
		}

		blocks := b.done()
		if len(blocks) == 0 {
			continue
		}
		pages = append(pages, docscan.Page{Number: i + 1, Blocks: blocks})
	}

	return pages, nil
}

func tabCells(line string) []string {
	if !strings.Contains(line, "\t") {
		return nil
	}
	var cells []string
	for _, f := range strings.Split(line, "\t") {
		f = strings.TrimSpace(f)
		if f != "" {
			cells = append(cells, f)
		}
	}
	return cells
}
