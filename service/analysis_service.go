package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Aashish23092/credit-report-analyzer/dto"
	"github.com/Aashish23092/credit-report-analyzer/logger"
	"github.com/Aashish23092/credit-report-analyzer/utils"
)

// FileSeparator joins document texts in BatchResult.CombinedText.
const FileSeparator = "\n\n===== next file =====\n\n"

type AnalysisService struct {
	extractor    TextExtractor
	consolidator *Consolidator
	narrative    *NarrativeService
	repo         AnalysisRepository
	workers      int
	log          *slog.Logger
	now          func() time.Time
}

// NewAnalysisService wires the batch pipeline. narrative and repo may be nil
// to skip report generation or persistence.
func NewAnalysisService(
	extractor TextExtractor,
	narrative *NarrativeService,
	repo AnalysisRepository,
	workers int,
	log *slog.Logger,
) *AnalysisService {
	if workers <= 0 {
		workers = 1
	}
	if log == nil {
		log = slog.Default()
	}
	return &AnalysisService{
		extractor:    extractor,
		consolidator: NewConsolidator(),
		narrative:    narrative,
		repo:         repo,
		workers:      workers,
		log:          log,
		now:          time.Now,
	}
}

// ProcessBatch classifies and extracts every document on the worker pool,
// then consolidates the fragments in input order. A document carrying an
// extraction error is kept in the result but contributes no fragment.
func (s *AnalysisService) ProcessBatch(ctx context.Context, docs []dto.SourceDocument) dto.BatchResult {
	return s.processBatch(ctx, uuid.New().String(), docs)
}

func (s *AnalysisService) processBatch(ctx context.Context, id string, docs []dto.SourceDocument) dto.BatchResult {
	log := logger.FromContext(ctx, s.log)

	raws := make([]dto.RawDocument, len(docs))
	fragments := make([]*dto.DocumentFragment, len(docs))

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, doc := range docs {
		g.Go(func() error {
			if doc.Error != "" {
				errMsg := doc.Error
				raws[i] = dto.RawDocument{Filename: doc.Filename, DocType: dto.DocTypeOther, Error: &errMsg}
				return nil
			}

			docType := utils.ClassifyDocument(doc.Filename, doc.Text)
			fragment := utils.ExtractFragment(doc.Text, docType)
			raws[i] = dto.RawDocument{Filename: doc.Filename, DocType: docType, Text: doc.Text}
			fragments[i] = &fragment
			return nil
		})
	}
	// Workers never fail; extraction errors are recorded on the document.
	g.Wait()

	ordered := make([]dto.DocumentFragment, 0, len(docs))
	results := make([]dto.DocumentResult, len(docs))
	texts := make([]string, 0, len(docs))
	for i, raw := range raws {
		results[i] = dto.DocumentResult{
			Filename:  raw.Filename,
			DocType:   raw.DocType,
			Error:     raw.Error,
			TextChars: utf8.RuneCountInString(raw.Text),
			Fragment:  fragments[i],
		}
		if fragments[i] != nil {
			ordered = append(ordered, *fragments[i])
			texts = append(texts, raw.Text)
		}
		log.Debug("analysis.document.classified", "file", raw.Filename, "doc_type", raw.DocType, "failed", raw.Error != nil)
	}

	result := dto.BatchResult{
		ID:           id,
		Documents:    results,
		Record:       s.consolidator.Merge(ordered),
		Summary:      Summarize(raws),
		CombinedText: strings.Join(texts, FileSeparator),
		Raw:          raws,
	}

	log.Info("analysis.batch.done",
		"files", result.Summary.TotalFiles,
		"quality", result.Summary.QualityTier,
		"has_error", result.Summary.HasError,
	)
	return result
}

// Analyze extracts text from uploaded files, processes the batch, requests
// the narrative report when configured and persists the outcome. A file
// whose text cannot be extracted is reported on its document and does not
// fail the batch.
func (s *AnalysisService) Analyze(ctx context.Context, files []dto.UploadedFile) (*dto.AnalysisResponse, error) {
	if len(files) == 0 {
		return nil, dto.ErrNoFiles
	}

	id := uuid.New().String()
	ctx = logger.WithBatchID(ctx, id)
	log := logger.FromContext(ctx, s.log)
	log.Info("analysis.start", "files", len(files))

	docs := make([]dto.SourceDocument, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, f := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			docs[i] = dto.SourceDocument{Filename: f.Filename}
			text, err := s.extractor.ExtractText(gctx, f.Filename, f.Data)
			if err != nil {
				log.Warn("analysis.document.failed", "file", f.Filename, "error", err)
				docs[i].Error = err.Error()
				return nil
			}
			docs[i].Text = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}

	result := s.processBatch(ctx, id, docs)

	resp := &dto.AnalysisResponse{
		ID:         result.ID,
		Documents:  result.Documents,
		Structured: result.Record,
		Summary:    result.Summary,
		AnalyzedAt: s.now().UTC().Format(time.RFC3339),
	}

	if s.narrative != nil {
		report, raw, err := s.narrative.Generate(ctx, result)
		if err != nil {
			log.Error("analysis.narrative.failed", "error", err)
		} else {
			resp.Report = report
			resp.RawReport = raw
		}
	}

	if s.repo != nil {
		if err := s.repo.Save(ctx, resp); err != nil {
			return nil, fmt.Errorf("save analysis: %w", err)
		}
	}

	return resp, nil
}

// Get loads a stored analysis.
func (s *AnalysisService) Get(ctx context.Context, id string) (*dto.AnalysisResponse, error) {
	if s.repo == nil {
		return nil, dto.ErrAnalysisNotFound
	}
	return s.repo.Get(ctx, id)
}

// SaveReport attaches a narrative, split into sections, to a stored analysis.
func (s *AnalysisService) SaveReport(ctx context.Context, id, text string) (dto.ReportSections, error) {
	sections := SplitReport(text)
	if s.repo == nil {
		return nil, dto.ErrAnalysisNotFound
	}
	if err := s.repo.UpdateReport(ctx, id, sections, text); err != nil {
		return nil, err
	}
	return sections, nil
}
