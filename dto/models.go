package dto

type DocType string

const (
	DocTypeCompanyReport    DocType = "company_report"
	DocTypeCreditDetail     DocType = "credit_detail"
	DocTypeCollateralRecord DocType = "collateral_record"
	DocTypeOther            DocType = "other"
)

type LoanType string

const (
	LoanTypeWorking  LoanType = "working"
	LoanTypeFacility LoanType = "facility"
	LoanTypeOther    LoanType = "other"
)

type CollateralType string

const (
	CollateralRealEstate CollateralType = "real_estate"
	CollateralGuarantee  CollateralType = "guarantee"
	CollateralDeposit    CollateralType = "deposit"
)

type QualityTier string

const (
	QualityExcellent QualityTier = "excellent"
	QualityGood      QualityTier = "good"
	QualityFair      QualityTier = "fair"
	QualityPoor      QualityTier = "poor"
)

// SourceDocument is one (filename, text) pair handed to the engine after
// text extraction. Error is set when the extractor could not produce text.
type SourceDocument struct {
	Filename string `json:"filename"`
	Text     string `json:"-"`
	Error    string `json:"error,omitempty"`
}

// RawDocument is a classified source document.
type RawDocument struct {
	Filename string  `json:"filename"`
	DocType  DocType `json:"doc_type"`
	Text     string  `json:"-"`
	Error    *string `json:"error"`
}

// CompanyInfo holds identity fields. Every field is independently optional.
type CompanyInfo struct {
	Name               *string `json:"name"`
	RegistrationNumber *string `json:"registration_number"`
	CEO                *string `json:"ceo"`
	Industry           *string `json:"industry"`
	EstablishedDate    *string `json:"established_date"`
	Address            *string `json:"address"`
	EmployeeCount      *int    `json:"employee_count"`
	Phone              *string `json:"phone"`
}

// FinancialData amounts are in millions of currency units. The series
// fields keep at most three values in document order.
type FinancialData struct {
	Revenue          []float64 `json:"revenue"`
	OperatingIncome  []float64 `json:"operating_income"`
	NetIncome        []float64 `json:"net_income"`
	TotalAssets      []float64 `json:"total_assets"`
	TotalLiabilities []float64 `json:"total_liabilities"`
	Equity           []float64 `json:"equity"`
	DebtRatio        *float64  `json:"debt_ratio"`
	CurrentRatio     *float64  `json:"current_ratio"`
	QuickRatio       *float64  `json:"quick_ratio"`
	ROE              *float64  `json:"roe"`
	ROA              *float64  `json:"roa"`
}

type CreditInfo struct {
	CreditRating *string  `json:"credit_rating"`
	RatingAgency *string  `json:"rating_agency"`
	RatingDate   *string  `json:"rating_date"`
	CreditLimit  *float64 `json:"credit_limit"`
	// DefaultHistoryFlag is true when a delinquency or default marker was
	// seen anywhere in the text, nil otherwise.
	DefaultHistoryFlag *bool `json:"default_history_flag"`
}

type BusinessInfo struct {
	MainProducts   []string `json:"main_products"`
	Certifications []string `json:"certifications"`
	ExportRatio    *float64 `json:"export_ratio"`
}

type Loan struct {
	Institution string   `json:"institution"`
	LoanType    LoanType `json:"loan_type"`
	Amount      float64  `json:"amount"`
}

type Guarantee struct {
	Institution string  `json:"institution"`
	Amount      float64 `json:"amount"`
}

type LoanDetails struct {
	Loans          []Loan      `json:"loans"`
	Guarantees     []Guarantee `json:"guarantees"`
	TotalLoan      *float64    `json:"total_loan"`
	TotalGuarantee *float64    `json:"total_guarantee"`
	LoanCount      int         `json:"loan_count"`
}

type Collateral struct {
	Type   CollateralType `json:"type"`
	Amount float64        `json:"amount"`
}

type CollateralDetails struct {
	Collaterals     []Collateral `json:"collaterals"`
	TotalCollateral *float64     `json:"total_collateral"`
	CollateralCount int          `json:"collateral_count"`
}

// DocumentFragment is what the extractor produces for one document.
// Business, Loan and Collateral are nil unless the document type calls for them.
type DocumentFragment struct {
	DocType    DocType            `json:"doc_type"`
	Company    *CompanyInfo       `json:"company"`
	Financial  *FinancialData     `json:"financial"`
	Credit     *CreditInfo        `json:"credit"`
	Business   *BusinessInfo      `json:"business"`
	Loan       *LoanDetails       `json:"loan"`
	Collateral *CollateralDetails `json:"collateral"`
}

type Completeness struct {
	HasCompanyInfo    bool `json:"has_company_info"`
	HasFinancialInfo  bool `json:"has_financial_info"`
	HasCreditInfo     bool `json:"has_credit_info"`
	HasLoanInfo       bool `json:"has_loan_info"`
	HasCollateralInfo bool `json:"has_collateral_info"`
}

type ConsolidatedRecord struct {
	Company      CompanyInfo       `json:"company"`
	Financial    FinancialData     `json:"financial"`
	Credit       CreditInfo        `json:"credit"`
	Business     BusinessInfo      `json:"business"`
	Loan         LoanDetails       `json:"loan"`
	Collateral   CollateralDetails `json:"collateral"`
	Completeness Completeness      `json:"completeness"`
}

type BatchSummary struct {
	TotalFiles  int             `json:"total_files"`
	TypeCounts  map[DocType]int `json:"type_counts"`
	HasError    bool            `json:"has_error"`
	QualityTier QualityTier     `json:"quality_tier"`
}

// DocumentResult is the per-document view returned to callers.
type DocumentResult struct {
	Filename  string            `json:"filename"`
	DocType   DocType           `json:"doc_type"`
	Error     *string           `json:"error"`
	TextChars int               `json:"text_chars"`
	Fragment  *DocumentFragment `json:"structured,omitempty"`
}

type BatchResult struct {
	ID           string             `json:"id"`
	Documents    []DocumentResult   `json:"documents"`
	Record       ConsolidatedRecord `json:"structured"`
	Summary      BatchSummary       `json:"summary"`
	CombinedText string             `json:"-"`
	Raw          []RawDocument      `json:"-"`
}

// IsEmpty reports whether no field of the company record is set.
func (c *CompanyInfo) IsEmpty() bool {
	if c == nil {
		return true
	}
	return c.Name == nil && c.RegistrationNumber == nil && c.CEO == nil &&
		c.Industry == nil && c.EstablishedDate == nil && c.Address == nil &&
		c.EmployeeCount == nil && c.Phone == nil
}

func (f *FinancialData) IsEmpty() bool {
	if f == nil {
		return true
	}
	return len(f.Revenue) == 0 && len(f.OperatingIncome) == 0 && len(f.NetIncome) == 0 &&
		len(f.TotalAssets) == 0 && len(f.TotalLiabilities) == 0 && len(f.Equity) == 0 &&
		f.DebtRatio == nil && f.CurrentRatio == nil && f.QuickRatio == nil &&
		f.ROE == nil && f.ROA == nil
}

func (c *CreditInfo) IsEmpty() bool {
	if c == nil {
		return true
	}
	return c.CreditRating == nil && c.RatingAgency == nil && c.RatingDate == nil &&
		c.CreditLimit == nil && c.DefaultHistoryFlag == nil
}

func (b *BusinessInfo) IsEmpty() bool {
	if b == nil {
		return true
	}
	return len(b.MainProducts) == 0 && len(b.Certifications) == 0 && b.ExportRatio == nil
}

func (l *LoanDetails) IsEmpty() bool {
	if l == nil {
		return true
	}
	return len(l.Loans) == 0 && len(l.Guarantees) == 0 &&
		l.TotalLoan == nil && l.TotalGuarantee == nil && l.LoanCount == 0
}

func (c *CollateralDetails) IsEmpty() bool {
	if c == nil {
		return true
	}
	return len(c.Collaterals) == 0 && c.TotalCollateral == nil && c.CollateralCount == 0
}

// NewFinancialData returns a record with empty, non-nil series.
func NewFinancialData() FinancialData {
	return FinancialData{
		Revenue:          []float64{},
		OperatingIncome:  []float64{},
		NetIncome:        []float64{},
		TotalAssets:      []float64{},
		TotalLiabilities: []float64{},
		Equity:           []float64{},
	}
}

func NewBusinessInfo() BusinessInfo {
	return BusinessInfo{MainProducts: []string{}, Certifications: []string{}}
}

func NewLoanDetails() LoanDetails {
	return LoanDetails{Loans: []Loan{}, Guarantees: []Guarantee{}}
}

func NewCollateralDetails() CollateralDetails {
	return CollateralDetails{Collaterals: []Collateral{}}
}
