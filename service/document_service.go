package service

import (
	"fmt"
	"time"

	"github.com/finscan/finscan/dto"
	"github.com/finscan/finscan/utils/docscan"
)

// DocumentService extracts a document's pages and walks them for the
// highest normalized value.
type DocumentService struct {
	walker *docscan.Walker
}

// NewDocumentService builds a service reporting walk progress to the given
// reporter. A nil reporter disables diagnostics.
func NewDocumentService(reporter docscan.Reporter) *DocumentService {
	return &DocumentService{
		walker: docscan.NewWalker(reporter),
	}
}

// FindHighestValue analyzes one uploaded document and returns the highest
// normalized value with its provenance. A document that yields pages but no
// numeric tokens returns Found=false; failing to obtain any page content at
// all is an error, since there is nothing to walk.
func (s *DocumentService) FindHighestValue(filename string, data []byte, password string) (*dto.HighestValueResponse, error) {
	extractor, err := ExtractorForFile(filename)
	if err != nil {
		return nil, err
	}

	pages, err := extractor.ExtractPages(data, password)
	if err != nil {
		return nil, fmt.Errorf("extract pages from %s: %w", filename, err)
	}

	result := s.walker.Scan(docscan.Document{Filename: filename, Pages: pages})

	response := &dto.HighestValueResponse{
		Found:        result.Found,
		Filename:     filename,
		PagesScanned: len(pages),
		ProcessedAt:  time.Now().Format(time.RFC3339),
	}
	if result.Found {
		response.Value = result.Value.String()
		response.Page = result.Page
		response.Row = result.Row
		response.RawText = result.RawText
		response.MultiplierApplied = result.Multiplier.String()
	}

	return response, nil
}
