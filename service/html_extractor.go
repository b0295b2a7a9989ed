package service

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/finscan/finscan/utils/docscan"
)

// HTMLExtractor handles HTML files. Table elements become cell grids; other
// text-bearing blocks become lines, in document order. Page headers and
// footers are kept: scale declarations often live there.
type HTMLExtractor struct{}

func (e *HTMLExtractor) ExtractPages(data []byte, password string) ([]docscan.Page, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var blocks []docscan.Block

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style":
				return
			case "table":
				if rows := htmlTableRows(n); len(rows) > 0 {
					blocks = append(blocks, docscan.TableBlock(rows))
				}
				return
			case "p", "li", "blockquote", "h1", "h2", "h3", "h4", "h5", "h6":
				if t := nodeText(n); t != "" {
					blocks = append(blocks, docscan.TextBlock(t))
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if len(blocks) == 0 {
		return nil, nil
	}
	return []docscan.Page{{Number: 1, Blocks: blocks}}, nil
}

func htmlTableRows(table *html.Node) [][]string {
	var rows [][]string

	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			var cells []string
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
					cells = append(cells, nodeText(c))
				}
			}
			rows = append(rows, cells)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(table)

	return rows
}

func nodeText(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}
