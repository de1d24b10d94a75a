package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aashish23092/credit-report-analyzer/dto"
	"github.com/Aashish23092/credit-report-analyzer/logger"
	"github.com/Aashish23092/credit-report-analyzer/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AnalysisHandler struct {
	analysisService *service.AnalysisService
	maxFiles        int
	maxFileSize     int64
}

func NewAnalysisHandler(analysisService *service.AnalysisService, maxFiles int, maxFileSize int64) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		maxFiles:        maxFiles,
		maxFileSize:     maxFileSize,
	}
}

// Register mounts the analysis routes on rg.
func (h *AnalysisHandler) Register(rg *gin.RouterGroup) {
	analysis := rg.Group("/analysis")
	{
		analysis.POST("/upload", h.Upload)
		analysis.POST("/sections", h.SplitSections)
		analysis.GET("/:id", h.Get)
		analysis.GET("/:id/export", h.Export)
		analysis.PUT("/:id/report", h.SaveReport)
	}
}

// Upload handles POST /analysis/upload
func (h *AnalysisHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to parse multipart form", err)
		return
	}

	request := &dto.AnalysisRequest{
		Files:       form.File["files[]"],
		MaxFiles:    h.maxFiles,
		MaxFileSize: h.maxFileSize,
	}
	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid upload", err)
		return
	}

	files := make([]dto.UploadedFile, 0, len(request.Files))
	for _, fh := range request.Files {
		f, err := fh.Open()
		if err != nil {
			h.sendError(c, http.StatusBadRequest, "Failed to open file", fmt.Errorf("%s: %w", fh.Filename, err))
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			h.sendError(c, http.StatusBadRequest, "Failed to read file", fmt.Errorf("%s: %w", fh.Filename, err))
			return
		}
		files = append(files, dto.UploadedFile{Filename: fh.Filename, Data: data})
	}

	logger.Info(c.Request.Context(), "analysis.upload", "files", len(files))

	response, err := h.analysisService.Analyze(c.Request.Context(), files)
	if err != nil {
		h.sendError(c, statusFor(err), "Failed to analyze documents", err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Get handles GET /analysis/:id
func (h *AnalysisHandler) Get(c *gin.Context) {
	response, err := h.analysisService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.sendError(c, statusFor(err), "Failed to load analysis", err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Export handles GET /analysis/:id/export
func (h *AnalysisHandler) Export(c *gin.Context) {
	id := c.Param("id")
	data, err := h.analysisService.ExportXLSX(c.Request.Context(), id)
	if err != nil {
		h.sendError(c, statusFor(err), "Failed to export analysis", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="analysis-%s.xlsx"`, id))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// SplitSections handles POST /analysis/sections
func (h *AnalysisHandler) SplitSections(c *gin.Context) {
	var req dto.SectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": service.SplitReport(req.Text)})
}

// SaveReport handles PUT /analysis/:id/report
func (h *AnalysisHandler) SaveReport(c *gin.Context) {
	var req dto.SectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	sections, err := h.analysisService.SaveReport(c.Request.Context(), c.Param("id"), req.Text)
	if err != nil {
		h.sendError(c, statusFor(err), "Failed to save report", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": sections})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, dto.ErrAnalysisNotFound):
		return http.StatusNotFound
	case errors.Is(err, dto.ErrNoFiles),
		errors.Is(err, dto.ErrTooManyFiles),
		errors.Is(err, dto.ErrUnsupportedFile),
		errors.Is(err, dto.ErrFileTooLarge):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// sendError sends a structured error response
func (h *AnalysisHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		logger.Warn(c.Request.Context(), message, "error", err, "status", statusCode)
	}

	code := "ANALYSIS_FAILED"
	if statusCode == http.StatusNotFound {
		code = "NOT_FOUND"
	} else if statusCode == http.StatusBadRequest {
		code = "INVALID_REQUEST"
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   code,
		Message: errorMsg,
		Code:    statusCode,
	})
}
