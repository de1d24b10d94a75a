package dto

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalysisRequestValidate(t *testing.T) {
	tests := []struct {
		name  string
		files []*multipart.FileHeader
		want  error
	}{
		{"no files", nil, ErrNoFiles},
		{"too many", []*multipart.FileHeader{{Filename: "a.pdf"}, {Filename: "b.pdf"}, {Filename: "c.pdf"}}, ErrTooManyFiles},
		{"unsupported", []*multipart.FileHeader{{Filename: "a.docx"}}, ErrUnsupportedFile},
		{"too large", []*multipart.FileHeader{{Filename: "a.pdf", Size: 2048}}, ErrFileTooLarge},
		{"ok", []*multipart.FileHeader{{Filename: "a.PDF", Size: 10}, {Filename: "b.html", Size: 10}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &AnalysisRequest{Files: tt.files, MaxFiles: 2, MaxFileSize: 1024}
			err := req.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
