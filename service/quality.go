package service

import (
	"github.com/Aashish23092/credit-report-analyzer/dto"
)

// ScoreQuality grades a batch from its document type coverage. Rules are
// checked in order: any document error is poor, all three report types is
// excellent, a company report alone is good, anything else is fair.
func ScoreQuality(typeCounts map[dto.DocType]int, hasError bool) dto.QualityTier {
	switch {
	case hasError:
		return dto.QualityPoor
	case typeCounts[dto.DocTypeCompanyReport] > 0 &&
		typeCounts[dto.DocTypeCreditDetail] > 0 &&
		typeCounts[dto.DocTypeCollateralRecord] > 0:
		return dto.QualityExcellent
	case typeCounts[dto.DocTypeCompanyReport] > 0:
		return dto.QualityGood
	default:
		return dto.QualityFair
	}
}

// Summarize counts documents per type and scores the batch. A document whose
// text could not be extracted is counted under its classified type, which is
// other for failed documents.
func Summarize(docs []dto.RawDocument) dto.BatchSummary {
	summary := dto.BatchSummary{
		TotalFiles: len(docs),
		TypeCounts: make(map[dto.DocType]int),
	}
	for _, d := range docs {
		summary.TypeCounts[d.DocType]++
		if d.Error != nil {
			summary.HasError = true
		}
	}
	summary.QualityTier = ScoreQuality(summary.TypeCounts, summary.HasError)
	return summary
}
