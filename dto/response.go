package dto

import "errors"

// Custom errors
var (
	ErrNoFiles          = errors.New("at least one file is required")
	ErrTooManyFiles     = errors.New("too many files")
	ErrUnsupportedFile  = errors.New("unsupported file type")
	ErrFileTooLarge     = errors.New("file exceeds size limit")
	ErrAnalysisNotFound = errors.New("analysis not found")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ReportSections maps section keys (section0..section5) to narrative text.
type ReportSections map[string]string

// AnalysisResponse is the final response structure
type AnalysisResponse struct {
	ID         string             `json:"id"`
	Documents  []DocumentResult   `json:"documents"`
	Structured ConsolidatedRecord `json:"structured"`
	Summary    BatchSummary       `json:"summary"`
	Report     ReportSections     `json:"report,omitempty"`
	RawReport  string             `json:"raw_report,omitempty"`
	AnalyzedAt string             `json:"analyzed_at"`
}
