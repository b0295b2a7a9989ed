package handler

import (
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finscan/finscan/dto"
	"github.com/finscan/finscan/service"
)

type DocumentHandler struct {
	documentService *service.DocumentService
	maxFileSize     int64
}

func NewDocumentHandler(documentService *service.DocumentService, maxFileSize int64) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		maxFileSize:     maxFileSize,
	}
}

// FindHighestValue handles the POST /documents/highest-value endpoint
func (h *DocumentHandler) FindHighestValue(c *gin.Context) {
	log.Println("Received highest-value analysis request")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "No file provided", err)
		return
	}

	request := &dto.AnalyzeRequest{
		File:     fileHeader,
		Password: c.PostForm("password"),
	}
	if err := request.Validate(h.maxFileSize); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	if !service.IsSupportedExtension(fileHeader.Filename) {
		h.sendError(c, http.StatusUnsupportedMediaType, "Unsupported file type", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to open uploaded file", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to read uploaded file", err)
		return
	}

	log.Printf("Analyzing %s (%d bytes)", fileHeader.Filename, len(data))

	response, err := h.documentService.FindHighestValue(fileHeader.Filename, data, request.Password)
	if err != nil {
		h.sendError(c, http.StatusUnprocessableEntity, "Failed to analyze document", err)
		return
	}

	log.Printf("Analysis of %s completed, found=%v", fileHeader.Filename, response.Found)
	c.JSON(http.StatusOK, response)
}

// sendError sends a structured error response
func (h *DocumentHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "ANALYSIS_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
