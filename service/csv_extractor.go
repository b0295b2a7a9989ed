package service

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/finscan/finscan/utils/docscan"
)

// CSVExtractor handles CSV exports: the whole file is one table on one
// page, first record as header row.
type CSVExtractor struct{}

func (e *CSVExtractor) ExtractPages(data []byte, password string) ([]docscan.Page, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	return []docscan.Page{{
		Number: 1,
		Blocks: []docscan.Block{docscan.TableBlock(records)},
	}}, nil
}
