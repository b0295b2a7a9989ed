package dto

import (
	"errors"
	"mime/multipart"
)

// AnalyzeRequest represents an incoming document analysis request.
type AnalyzeRequest struct {
	File     *multipart.FileHeader `form:"file" binding:"required"`
	Password string                `form:"password"`
}

// Validate performs basic validation on the request.
func (r *AnalyzeRequest) Validate(maxFileSize int64) error {
	if r.File == nil {
		return ErrNoFileProvided
	}
	if r.File.Size == 0 {
		return errors.New("uploaded file is empty")
	}
	if maxFileSize > 0 && r.File.Size > maxFileSize {
		return ErrFileTooLarge
	}
	return nil
}
