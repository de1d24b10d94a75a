package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/Aashish23092/credit-report-analyzer/dto"
	"github.com/Aashish23092/credit-report-analyzer/logger"
	"github.com/Aashish23092/credit-report-analyzer/utils"
)

const narrativeSystemPrompt = `당신은 중소기업 전문 경영컨설턴트입니다. 제공된 신용평가 데이터만을 근거로
다음 여섯 개 섹션으로 구성된 종합 경영컨설팅 리포트를 마크다운으로 작성하십시오.

## [0. 기업 현황 요약]
## [1. 자금조달 전략]
## [2. 세무 절세 전략]
## [3. 기업인증 전략]
## [4. 정책자금 활용 방안]
## [5. 정부지원금 제안]

금액 단위는 백만원입니다. 자료가 없는 항목은 "자료 없음"으로 표기하고 추측하지 마십시오.`

const truncationNotice = "\n\n... (내용이 길어 일부 생략됨) ..."

// NarrativeService turns a finished batch into the consulting report.
type NarrativeService struct {
	generator      NarrativeGenerator
	validator      *RecordValidator
	maxTextPerFile int
	log            *slog.Logger
}

func NewNarrativeService(generator NarrativeGenerator, maxTextPerFile int, log *slog.Logger) (*NarrativeService, error) {
	if log == nil {
		log = slog.Default()
	}
	validator, err := NewRecordValidator()
	if err != nil {
		return nil, err
	}
	if maxTextPerFile <= 0 {
		maxTextPerFile = 10000
	}
	return &NarrativeService{
		generator:      generator,
		validator:      validator,
		maxTextPerFile: maxTextPerFile,
		log:            log,
	}, nil
}

// Generate validates the record, asks the generator for a report and splits
// it into sections. It returns the sections and the unsplit report text.
func (s *NarrativeService) Generate(ctx context.Context, result dto.BatchResult) (dto.ReportSections, string, error) {
	log := logger.FromContext(ctx, s.log)

	recordJSON, err := s.validator.Validate(result.Record)
	if err != nil {
		return nil, "", err
	}

	prompt := s.BuildPrompt(result, recordJSON)
	log.Info("narrative.request", "prompt_len", len(prompt), "quality", result.Summary.QualityTier)

	text, err := s.generator.Generate(ctx, narrativeSystemPrompt, prompt)
	if err != nil {
		return nil, "", fmt.Errorf("generate report: %w", err)
	}

	return SplitReport(text), text, nil
}

// BuildPrompt lays out the structured record, the data quality block and each
// file's text capped at maxTextPerFile characters.
func (s *NarrativeService) BuildPrompt(result dto.BatchResult, recordJSON []byte) string {
	var b strings.Builder

	b.WriteString("# 기업 신용분석 데이터\n\n")

	b.WriteString("## 구조화된 데이터 (우선 활용)\n\n```json\n")
	b.Write(recordJSON)
	b.WriteString("\n```\n\n")

	types, _ := json.Marshal(result.Summary.TypeCounts)
	hasError := "No"
	if result.Summary.HasError {
		hasError = "Yes"
	}
	b.WriteString("## 데이터 품질 정보\n\n")
	fmt.Fprintf(&b, "- 총 파일 수: %d\n", result.Summary.TotalFiles)
	fmt.Fprintf(&b, "- 파일 유형: %s\n", types)
	fmt.Fprintf(&b, "- 데이터 품질: %s\n", result.Summary.QualityTier)
	fmt.Fprintf(&b, "- 오류 발생: %s\n\n", hasError)

	b.WriteString("## 원본 텍스트 (참고용)\n\n")
	b.WriteString("구조화된 데이터가 불완전한 경우, 아래 원본 텍스트에서 추가 정보를 추출하십시오.\n\n")
	for i, doc := range result.Raw {
		fmt.Fprintf(&b, "### [파일 %d] %s (%s)\n\n", i+1, doc.Filename, doc.DocType)
		if doc.Error != nil {
			fmt.Fprintf(&b, "오류: %s\n\n", *doc.Error)
		} else {
			fmt.Fprintf(&b, "```\n%s\n```\n\n", truncateRunes(doc.Text, s.maxTextPerFile))
		}
		b.WriteString("---\n\n")
	}

	b.WriteString("\n\n## 분석 요청\n\n")
	b.WriteString("위 구조화된 데이터와 원본 텍스트를 바탕으로, ")
	b.WriteString("[0. 기업 현황 요약] ~ [5. 정부지원금 제안] 섹션으로 구성된 종합 경영컨설팅 리포트를 작성해주세요.\n")

	return b.String()
}

// SplitReport cuts report text at the six fixed section headings.
func SplitReport(text string) dto.ReportSections {
	return dto.ReportSections(utils.SplitSections(text, utils.ReportHeadings))
}

func truncateRunes(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return string(runes[:limit]) + truncationNotice
}
