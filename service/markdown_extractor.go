package service

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/finscan/finscan/utils/docscan"
)

// MarkdownExtractor handles Markdown reports using goldmark with the GFM
// table extension. Pipe tables become cell grids; headings and paragraphs
// become lines.
type MarkdownExtractor struct{}

func (e *MarkdownExtractor) ExtractPages(data []byte, password string) ([]docscan.Page, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	doc := md.Parser().Parse(text.NewReader(data))

	var blocks []docscan.Block

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *east.Table:
			if rows := markdownTableRows(node, data); len(rows) > 0 {
				blocks = append(blocks, docscan.TableBlock(rows))
			}
		case *ast.Heading:
			if t := strings.TrimSpace(string(node.Text(data))); t != "" {
				blocks = append(blocks, docscan.TextBlock(t))
			}
		default:
			for _, line := range strings.Split(blockText(n, data), "\n") {
				if strings.TrimSpace(line) != "" {
					blocks = append(blocks, docscan.TextBlock(line))
				}
			}
		}
	}

	if len(blocks) == 0 {
		return nil, nil
	}
	return []docscan.Page{{Number: 1, Blocks: blocks}}, nil
}

func markdownTableRows(table *east.Table, src []byte) [][]string {
	var rows [][]string
	for r := table.FirstChild(); r != nil; r = r.NextSibling() {
		switch r.(type) {
		case *east.TableHeader, *east.TableRow:
			var cells []string
			for c := r.FirstChild(); c != nil; c = c.NextSibling() {
				cells = append(cells, strings.TrimSpace(string(c.Text(src))))
			}
			rows = append(rows, cells)
		}
	}
	return rows
}

// blockText gets the text content of a goldmark AST node. Leaf blocks read
// their source lines directly; container blocks (lists, quotes) recurse.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		if lines := n.Lines(); lines.Len() > 0 {
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				buf.Write(seg.Value(src))
			}
			return buf.String()
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if s := blockText(c, src); s != "" {
			buf.WriteString(s)
			buf.WriteByte('\n')
		}
	}
	return buf.String()
}
