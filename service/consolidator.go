package service

import (
	"github.com/Aashish23092/credit-report-analyzer/dto"
)

// Consolidator folds per-document fragments into one record. It is stateless
// and safe for concurrent use.
//
// Company fields merge first-wins: a later document never overwrites a field
// an earlier one filled. Every other category is replaced wholesale by each
// later non-empty fragment, so the last table-bearing document in batch order
// supplies the financial, credit, business, loan and collateral data.
type Consolidator struct{}

func NewConsolidator() *Consolidator {
	return &Consolidator{}
}

// Merge replays fragments in order. The result's slices are never nil.
func (c *Consolidator) Merge(fragments []dto.DocumentFragment) dto.ConsolidatedRecord {
	record := dto.ConsolidatedRecord{
		Financial:  dto.NewFinancialData(),
		Business:   dto.NewBusinessInfo(),
		Loan:       dto.NewLoanDetails(),
		Collateral: dto.NewCollateralDetails(),
	}

	for _, f := range fragments {
		mergeCompany(&record.Company, f.Company)

		if !f.Financial.IsEmpty() {
			record.Financial = *f.Financial
		}
		if !f.Credit.IsEmpty() {
			record.Credit = *f.Credit
		}
		if !f.Business.IsEmpty() {
			record.Business = *f.Business
		}
		if !f.Loan.IsEmpty() {
			record.Loan = *f.Loan
		}
		if !f.Collateral.IsEmpty() {
			record.Collateral = *f.Collateral
		}
	}

	record.Completeness = dto.Completeness{
		HasCompanyInfo:    !record.Company.IsEmpty(),
		HasFinancialInfo:  !record.Financial.IsEmpty(),
		HasCreditInfo:     !record.Credit.IsEmpty(),
		HasLoanInfo:       !record.Loan.IsEmpty(),
		HasCollateralInfo: !record.Collateral.IsEmpty(),
	}
	return record
}

func mergeCompany(dst, src *dto.CompanyInfo) {
	if src == nil {
		return
	}
	firstString(&dst.Name, src.Name)
	firstString(&dst.RegistrationNumber, src.RegistrationNumber)
	firstString(&dst.CEO, src.CEO)
	firstString(&dst.Industry, src.Industry)
	firstString(&dst.EstablishedDate, src.EstablishedDate)
	firstString(&dst.Address, src.Address)
	firstString(&dst.Phone, src.Phone)
	if dst.EmployeeCount == nil && src.EmployeeCount != nil {
		v := *src.EmployeeCount
		dst.EmployeeCount = &v
	}
}

func firstString(dst **string, src *string) {
	if *dst == nil && src != nil {
		v := *src
		*dst = &v
	}
}
