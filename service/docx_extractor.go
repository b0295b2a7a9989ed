package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/finscan/finscan/utils/docscan"
)

// DOCXExtractor handles .docx files. Word documents carry real table
// structure, so cell grids come straight from the document body. The whole
// file is treated as a single page: DOCX has no fixed pagination before
// rendering.
type DOCXExtractor struct{}

func (e *DOCXExtractor) ExtractPages(data []byte, password string) ([]docscan.Page, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	var blocks []docscan.Block
	for _, item := range doc.Document.Body.Items {
		switch it := item.(type) {
		case *docx.Paragraph:
			if text := paragraphText(it); text != "" {
				blocks = append(blocks, docscan.TextBlock(text))
			}
		case *docx.Table:
			if rows := tableRows(it); len(rows) > 0 {
				blocks = append(blocks, docscan.TableBlock(rows))
			}
		}
	}

	if len(blocks) == 0 {
		return nil, nil
	}
	return []docscan.Page{{Number: 1, Blocks: blocks}}, nil
}

func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

func tableRows(table *docx.Table) [][]string {
	var rows [][]string
	for _, tr := range table.TableRows {
		var cells []string
		for _, tc := range tr.TableCells {
			var buf strings.Builder
			for _, para := range tc.Paragraphs {
				if text := paragraphText(para); text != "" {
					if buf.Len() > 0 {
						buf.WriteByte(' ')
					}
					buf.WriteString(text)
				}
			}
			cells = append(cells, buf.String())
		}
		rows = append(rows, cells)
	}
	return rows
}
