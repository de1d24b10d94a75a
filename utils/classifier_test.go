package utils

import (
	"testing"

	"github.com/Aashish23092/credit-report-analyzer/dto"
	"github.com/stretchr/testify/assert"
)

func TestClassifyDocument(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		text     string
		want     dto.DocType
	}{
		{"company report filename", "ABC_기업종합보고서.pdf", "", dto.DocTypeCompanyReport},
		{"english report filename", "Annual_Report.PDF", "", dto.DocTypeCompanyReport},
		{"credit detail filename", "세부신용공여_2024.pdf", "", dto.DocTypeCreditDetail},
		{"credit detail marker", "scan01.pdf", "== 세부신용공여 현황 ==", dto.DocTypeCreditDetail},
		{"collateral filename", "담보_목록.pdf", "", dto.DocTypeCollateralRecord},
		{"collateral marker", "scan02.pdf", "담보기록 조회", dto.DocTypeCollateralRecord},
		{"statements need both markers", "scan03.pdf", "재무제표\n손익계산서", dto.DocTypeCompanyReport},
		{"one statement marker is not enough", "scan04.pdf", "재무제표 only", dto.DocTypeOther},
		{"loan balance marker", "scan05.pdf", "대출잔액 30", dto.DocTypeCreditDetail},
		{"credit extension marker", "scan09.pdf", "신용공여 현황 대출 내역", dto.DocTypeCreditDetail},
		{"collateral value marker", "scan06.pdf", "유효담보가액 100", dto.DocTypeCollateralRecord},
		{"english markers", "scan07.pdf", "Financial Statement / Income Statement", dto.DocTypeCompanyReport},
		{"nothing recognisable", "scan08.pdf", "hello world", dto.DocTypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyDocument(tt.filename, tt.text))
		})
	}
}

func TestClassifyDocumentFilenameOutranksContent(t *testing.T) {
	// Text carries a collateral marker; only the filename changes.
	text := "담보기록\n부동산담보: 100 백만원"

	assert.Equal(t, dto.DocTypeCollateralRecord, ClassifyDocument("scan.pdf", text))
	assert.Equal(t, dto.DocTypeCompanyReport, ClassifyDocument("company_report.pdf", text))
	assert.Equal(t, dto.DocTypeCreditDetail, ClassifyDocument("신용공여.pdf", text))
}

func TestClassifyDocumentRuleOrder(t *testing.T) {
	// Credit detail marker (rule 2) is checked before the statement pair (rule 4).
	text := "세부신용공여\n재무제표\n손익계산서"
	assert.Equal(t, dto.DocTypeCreditDetail, ClassifyDocument("scan.pdf", text))

	// Deterministic across calls.
	for i := 0; i < 5; i++ {
		assert.Equal(t, dto.DocTypeCreditDetail, ClassifyDocument("scan.pdf", text))
	}
}
