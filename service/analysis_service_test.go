package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aashish23092/credit-report-analyzer/dto"
	"github.com/Aashish23092/credit-report-analyzer/service"
	"github.com/Aashish23092/credit-report-analyzer/service/mocks"
)

const companyReportText = `기업명 : 주식회사 한빛정밀
대표자 : 김철수
재무제표
손익계산서
매출액 : 12,500 백만원
매출액 : 11,000 백만원
신용등급 : BB+`

const creditDetailText = `세부신용공여
국민은행
대출채권일반자금(운전)
30
기업명 : 다른회사
신용등급 : B`

const collateralText = `담보기록
부동산담보 : 3 억
총 담보가액 : 300 백만원`

func TestProcessBatch(t *testing.T) {
	svc := service.NewAnalysisService(nil, nil, nil, 2, nil)

	result := svc.ProcessBatch(context.Background(), []dto.SourceDocument{
		{Filename: "a.pdf", Text: companyReportText},
		{Filename: "b.pdf", Text: creditDetailText},
		{Filename: "c.pdf", Text: collateralText},
	})

	assert.NotEmpty(t, result.ID)
	require.Len(t, result.Documents, 3)
	assert.Equal(t, dto.DocTypeCompanyReport, result.Documents[0].DocType)
	assert.Equal(t, dto.DocTypeCreditDetail, result.Documents[1].DocType)
	assert.Equal(t, dto.DocTypeCollateralRecord, result.Documents[2].DocType)

	record := result.Record
	assert.Equal(t, "주식회사 한빛정밀", *record.Company.Name)
	// Credit is replaced by the later credit detail fragment.
	assert.Equal(t, "B", *record.Credit.CreditRating)
	assert.Equal(t, []float64{12500, 11000}, record.Financial.Revenue)
	require.Len(t, record.Loan.Loans, 1)
	assert.Equal(t, 30.0, record.Loan.Loans[0].Amount)
	assert.Equal(t, 300.0, *record.Collateral.TotalCollateral)
	assert.Equal(t, dto.Completeness{
		HasCompanyInfo: true, HasFinancialInfo: true, HasCreditInfo: true,
		HasLoanInfo: true, HasCollateralInfo: true,
	}, record.Completeness)

	assert.Equal(t, dto.QualityExcellent, result.Summary.QualityTier)
	assert.Equal(t, companyReportText+service.FileSeparator+creditDetailText+service.FileSeparator+collateralText, result.CombinedText)
}

func TestProcessBatchErroredDocument(t *testing.T) {
	svc := service.NewAnalysisService(nil, nil, nil, 4, nil)

	result := svc.ProcessBatch(context.Background(), []dto.SourceDocument{
		{Filename: "a.pdf", Text: companyReportText},
		{Filename: "broken.pdf", Error: "pdf: malformed"},
	})

	require.Len(t, result.Documents, 2)
	require.NotNil(t, result.Documents[1].Error)
	assert.Equal(t, "pdf: malformed", *result.Documents[1].Error)
	assert.Nil(t, result.Documents[1].Fragment)
	assert.Equal(t, dto.DocTypeOther, result.Documents[1].DocType)

	assert.Equal(t, "주식회사 한빛정밀", *result.Record.Company.Name)
	assert.True(t, result.Summary.HasError)
	assert.Equal(t, dto.QualityPoor, result.Summary.QualityTier)
	assert.Equal(t, companyReportText, result.CombinedText)
}

func TestProcessBatchOrderIndependentOfWorkers(t *testing.T) {
	docs := make([]dto.SourceDocument, 0, 20)
	for i := 0; i < 20; i++ {
		docs = append(docs, dto.SourceDocument{
			Filename: "report.pdf",
			Text:     "기업명 : 회사" + strings.Repeat("가", i+1) + "\n신용등급 : A" + strings.Repeat("+", i%3),
		})
	}

	serial := service.NewAnalysisService(nil, nil, nil, 1, nil).ProcessBatch(context.Background(), docs)
	parallel := service.NewAnalysisService(nil, nil, nil, 8, nil).ProcessBatch(context.Background(), docs)

	assert.Equal(t, serial.Record, parallel.Record)
	assert.Equal(t, serial.Documents, parallel.Documents)
	assert.Equal(t, "회사가", *parallel.Record.Company.Name)
	assert.Equal(t, "A+", *parallel.Record.Credit.CreditRating)
}

func TestAnalyze(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	extractor := mocks.NewMockTextExtractor(ctrl)
	repo := mocks.NewMockAnalysisRepository(ctrl)

	extractor.EXPECT().ExtractText(gomock.Any(), "기업종합보고서.pdf", []byte("pdf-1")).Return(companyReportText, nil)
	extractor.EXPECT().ExtractText(gomock.Any(), "scan.png", []byte("png")).Return("", errors.New("ocr failed"))

	var saved *dto.AnalysisResponse
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *dto.AnalysisResponse) error {
		saved = a
		return nil
	})

	svc := service.NewAnalysisService(extractor, nil, repo, 2, nil)
	resp, err := svc.Analyze(context.Background(), []dto.UploadedFile{
		{Filename: "기업종합보고서.pdf", Data: []byte("pdf-1")},
		{Filename: "scan.png", Data: []byte("png")},
	})
	require.NoError(t, err)

	assert.Same(t, saved, resp)
	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.AnalyzedAt)
	require.Len(t, resp.Documents, 2)
	assert.Equal(t, dto.DocTypeCompanyReport, resp.Documents[0].DocType)
	assert.Equal(t, "ocr failed", *resp.Documents[1].Error)
	assert.Equal(t, dto.QualityPoor, resp.Summary.QualityTier)
	assert.Nil(t, resp.Report)
}

func TestAnalyzeWithNarrative(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	extractor := mocks.NewMockTextExtractor(ctrl)
	generator := mocks.NewMockNarrativeGenerator(ctrl)

	extractor.EXPECT().ExtractText(gomock.Any(), "report.txt", gomock.Any()).Return(companyReportText, nil)
	generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, system, user string) (string, error) {
			assert.Contains(t, system, "[0. 기업 현황 요약]")
			assert.Contains(t, user, `"name": "주식회사 한빛정밀"`)
			assert.Contains(t, user, "### [파일 1] report.txt (company_report)")
			return "## [0. 기업 현황 요약]\n요약\n## [1. 자금조달 전략]\n전략", nil
		})

	narrative, err := service.NewNarrativeService(generator, 10000, nil)
	require.NoError(t, err)

	svc := service.NewAnalysisService(extractor, narrative, nil, 1, nil)
	resp, err := svc.Analyze(context.Background(), []dto.UploadedFile{{Filename: "report.txt", Data: []byte("x")}})
	require.NoError(t, err)

	assert.Equal(t, "## [0. 기업 현황 요약]\n요약", resp.Report["section0"])
	assert.Equal(t, "## [1. 자금조달 전략]\n전략", resp.Report["section1"])
	assert.Equal(t, "", resp.Report["section5"])
	assert.Contains(t, resp.RawReport, "요약")
}

func TestAnalyzeNarrativeFailureKeepsResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	extractor := mocks.NewMockTextExtractor(ctrl)
	generator := mocks.NewMockNarrativeGenerator(ctrl)

	extractor.EXPECT().ExtractText(gomock.Any(), gomock.Any(), gomock.Any()).Return(companyReportText, nil)
	generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("quota"))

	narrative, err := service.NewNarrativeService(generator, 0, nil)
	require.NoError(t, err)

	resp, err := service.NewAnalysisService(extractor, narrative, nil, 1, nil).
		Analyze(context.Background(), []dto.UploadedFile{{Filename: "report.txt"}})
	require.NoError(t, err)
	assert.Nil(t, resp.Report)
	assert.Equal(t, dto.QualityGood, resp.Summary.QualityTier)
}

func TestAnalyzeNoFiles(t *testing.T) {
	_, err := service.NewAnalysisService(nil, nil, nil, 1, nil).Analyze(context.Background(), nil)
	assert.ErrorIs(t, err, dto.ErrNoFiles)
}

func TestAnalyzeSaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	extractor := mocks.NewMockTextExtractor(ctrl)
	repo := mocks.NewMockAnalysisRepository(ctrl)
	extractor.EXPECT().ExtractText(gomock.Any(), gomock.Any(), gomock.Any()).Return("text", nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	_, err := service.NewAnalysisService(extractor, nil, repo, 1, nil).
		Analyze(context.Background(), []dto.UploadedFile{{Filename: "a.txt"}})
	assert.ErrorContains(t, err, "disk full")
}

func TestSaveReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockAnalysisRepository(ctrl)
	text := "## [2. 세무 절세 전략]\n절세"
	repo.EXPECT().UpdateReport(gomock.Any(), "a1", gomock.Any(), text).Return(nil)

	sections, err := service.NewAnalysisService(nil, nil, repo, 1, nil).SaveReport(context.Background(), "a1", text)
	require.NoError(t, err)
	assert.Equal(t, text, sections["section2"])
	assert.Len(t, sections, 6)
}

func TestGetWithoutRepository(t *testing.T) {
	_, err := service.NewAnalysisService(nil, nil, nil, 1, nil).Get(context.Background(), "x")
	assert.ErrorIs(t, err, dto.ErrAnalysisNotFound)
}
