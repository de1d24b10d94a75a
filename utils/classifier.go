package utils

import (
	"strings"

	"github.com/Aashish23092/credit-report-analyzer/dto"
)

// classifyRule returns the document type it recognises, or false.
type classifyRule func(filename, text string) (dto.DocType, bool)

var (
	companyReportFileKeywords = []string{"종합보고서", "기업보고서", "report"}
	creditDetailFileKeywords  = []string{"신용공여", "credit"}
	collateralFileKeywords    = []string{"담보", "collateral"}

	creditDetailMarkers      = []string{"세부신용공여", "detailed credit"}
	collateralMarkers        = []string{"담보기록", "collateral record"}
	financialStatementMarker = []string{"재무제표", "financial statement"}
	incomeStatementMarker    = []string{"손익계산서", "income statement"}
	loanBalanceMarkers       = []string{"신용공여", "대출잔액", "보증잔액", "loan balance", "guarantee balance"}
	collateralValueMarkers   = []string{"부동산담보", "유효담보가액", "real estate collateral", "effective collateral value"}
)

// classifyRules are evaluated in order; the first match wins. Filename rules
// for a category always come before the content rules for it.
var classifyRules = []classifyRule{
	func(filename, _ string) (dto.DocType, bool) {
		return dto.DocTypeCompanyReport, containsAny(filename, companyReportFileKeywords)
	},
	func(filename, text string) (dto.DocType, bool) {
		return dto.DocTypeCreditDetail, containsAny(filename, creditDetailFileKeywords) || containsAny(text, creditDetailMarkers)
	},
	func(filename, text string) (dto.DocType, bool) {
		return dto.DocTypeCollateralRecord, containsAny(filename, collateralFileKeywords) || containsAny(text, collateralMarkers)
	},
	func(_, text string) (dto.DocType, bool) {
		return dto.DocTypeCompanyReport, containsAny(text, financialStatementMarker) && containsAny(text, incomeStatementMarker)
	},
	func(_, text string) (dto.DocType, bool) {
		return dto.DocTypeCreditDetail, containsAny(text, loanBalanceMarkers)
	},
	func(_, text string) (dto.DocType, bool) {
		return dto.DocTypeCollateralRecord, containsAny(text, collateralValueMarkers)
	},
}

// ClassifyDocument tags a document from its filename and extracted text.
func ClassifyDocument(filename, text string) dto.DocType {
	lowerFilename := strings.ToLower(filename)
	lowerText := strings.ToLower(text)

	for _, rule := range classifyRules {
		if docType, ok := rule(lowerFilename, lowerText); ok {
			return docType
		}
	}
	return dto.DocTypeOther
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
