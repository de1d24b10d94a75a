package dto

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// SupportedExtensions lists the upload types the text extractor understands.
var SupportedExtensions = []string{".pdf", ".txt", ".html", ".htm", ".png", ".jpg", ".jpeg"}

// AnalysisRequest represents the incoming multipart upload
type AnalysisRequest struct {
	Files       []*multipart.FileHeader `form:"files[]"`
	MaxFiles    int                     `form:"-"`
	MaxFileSize int64                   `form:"-"`
}

// Validate performs basic validation on the request
func (r *AnalysisRequest) Validate() error {
	if len(r.Files) == 0 {
		return ErrNoFiles
	}
	if r.MaxFiles > 0 && len(r.Files) > r.MaxFiles {
		return fmt.Errorf("%w: got %d, limit %d", ErrTooManyFiles, len(r.Files), r.MaxFiles)
	}

	for _, f := range r.Files {
		if !IsSupportedFile(f.Filename) {
			return fmt.Errorf("%w: %s", ErrUnsupportedFile, f.Filename)
		}
		if r.MaxFileSize > 0 && f.Size > r.MaxFileSize {
			return fmt.Errorf("%w: %s", ErrFileTooLarge, f.Filename)
		}
	}
	return nil
}

func IsSupportedFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, e := range SupportedExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// UploadedFile is a file body read from the upload, ready for text extraction.
type UploadedFile struct {
	Filename string
	Data     []byte
}

// SectionsRequest carries narrative text to be split into report sections.
type SectionsRequest struct {
	Text string `json:"text" binding:"required"`
}
