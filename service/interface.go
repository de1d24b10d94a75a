package service

import (
	"context"
	"image"

	"github.com/Aashish23092/credit-report-analyzer/dto"
)

// TextExtractor turns an uploaded file into plain text.
//
//go:generate mockgen -destination=mocks/mock_interface.go -package=mocks -source=interface.go
type TextExtractor interface {
	ExtractText(ctx context.Context, filename string, data []byte) (string, error)
}

// NarrativeGenerator produces the consulting report text from prompts.
type NarrativeGenerator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ImageOCR recognises text in page images.
type ImageOCR interface {
	ExtractTextFromBytes(data []byte) (string, error)
	ExtractTextFromImage(img image.Image) (string, error)
}

// AnalysisRepository persists finished analyses.
type AnalysisRepository interface {
	Save(ctx context.Context, analysis *dto.AnalysisResponse) error
	Get(ctx context.Context, id string) (*dto.AnalysisResponse, error)
	UpdateReport(ctx context.Context, id string, report dto.ReportSections, rawReport string) error
}
