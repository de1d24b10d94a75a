package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"github.com/Aashish23092/credit-report-analyzer/dto"
)

const schema = `CREATE TABLE IF NOT EXISTS analyses (
	id           TEXT PRIMARY KEY,
	analyzed_at  TEXT NOT NULL,
	quality_tier TEXT NOT NULL,
	documents    TEXT NOT NULL,
	structured   TEXT NOT NULL,
	summary      TEXT NOT NULL,
	report       TEXT NOT NULL DEFAULT '{}',
	raw_report   TEXT NOT NULL DEFAULT ''
)`

const analysesTable = "analyses"

// SQLiteStore persists analyses as JSON columns in a single SQLite table.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (or creates) the database at path. ":memory:" gives a private
// in-memory database.
func Open(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One connection keeps an in-memory database alive and serialises writers.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save inserts or replaces an analysis.
func (s *SQLiteStore) Save(ctx context.Context, a *dto.AnalysisResponse) error {
	documents, err := json.Marshal(a.Documents)
	if err != nil {
		return fmt.Errorf("marshal documents: %w", err)
	}
	structured, err := json.Marshal(a.Structured)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	summary, err := json.Marshal(a.Summary)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	report, err := marshalReport(a.Report)
	if err != nil {
		return err
	}

	query, args, err := sq.Insert(analysesTable).
		Options("OR REPLACE").
		Columns("id", "analyzed_at", "quality_tier", "documents", "structured", "summary", "report", "raw_report").
		Values(a.ID, a.AnalyzedAt, string(a.Summary.QualityTier), string(documents), string(structured), string(summary), report, a.RawReport).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert analysis: %w", err)
	}
	return nil
}

// Get loads an analysis by ID, returning dto.ErrAnalysisNotFound when absent.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*dto.AnalysisResponse, error) {
	query, args, err := sq.Select("id", "analyzed_at", "documents", "structured", "summary", "report", "raw_report").
		From(analysesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var (
		a                                      dto.AnalysisResponse
		documents, structured, summary, report string
	)
	err = s.db.QueryRowContext(ctx, query, args...).
		Scan(&a.ID, &a.AnalyzedAt, &documents, &structured, &summary, &report, &a.RawReport)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, dto.ErrAnalysisNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query analysis: %w", err)
	}

	if err := json.Unmarshal([]byte(documents), &a.Documents); err != nil {
		return nil, fmt.Errorf("decode documents: %w", err)
	}
	if err := json.Unmarshal([]byte(structured), &a.Structured); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	if err := json.Unmarshal([]byte(summary), &a.Summary); err != nil {
		return nil, fmt.Errorf("decode summary: %w", err)
	}
	if err := json.Unmarshal([]byte(report), &a.Report); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	if len(a.Report) == 0 {
		a.Report = nil
	}
	return &a, nil
}

// UpdateReport replaces the narrative of a stored analysis.
func (s *SQLiteStore) UpdateReport(ctx context.Context, id string, sections dto.ReportSections, rawReport string) error {
	report, err := marshalReport(sections)
	if err != nil {
		return err
	}

	query, args, err := sq.Update(analysesTable).
		Set("report", report).
		Set("raw_report", rawReport).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update report: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return dto.ErrAnalysisNotFound
	}
	return nil
}

func marshalReport(sections dto.ReportSections) (string, error) {
	if sections == nil {
		return "{}", nil
	}
	b, err := json.Marshal(sections)
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	return string(b), nil
}
