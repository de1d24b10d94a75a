package utils

import (
	"regexp"
	"strings"

	"github.com/Aashish23092/credit-report-analyzer/dto"
)

// proximityWindow is how many characters after an institution name are
// searched for its amount. Detailed credit tables flatten into lines like
// "국민은행\n대출채권일반자금(운전)\n30\n-\n30".
const proximityWindow = 200

var (
	bankNamePattern      = regexp.MustCompile(`[\p{Hangul}\w]+(?:은행|금고)|[A-Za-z][\w-]*(?:Bank|Savings)\b`)
	guarantorNamePattern = regexp.MustCompile(`[\p{Hangul}\w]+(?:보증기금|보증재단|보증보험)|[A-Za-z][\w-]*Guarantee[- ](?:Fund|Foundation|Insurance)`)

	loanAnchorPattern      = regexp.MustCompile(`(?:대출채권|(?i:loan\s+receivables?))\D*?([0-9][0-9,]*(?:\.[0-9]+)?)\s*(억원|억|백만원|천원|원)?`)
	guaranteeAnchorPattern = regexp.MustCompile(`(?:보증|(?i:guarantee))\D*?([0-9][0-9,]*(?:\.[0-9]+)?)\s*(억원|억|백만원|천원|원)?`)

	workingCapitalKeywords = []string{"운전", "working capital", "working-capital"}
	facilityKeywords       = []string{"시설", "facility"}
)

// windowAfter returns up to n characters of text starting at byte offset start.
func windowAfter(text string, start, n int) string {
	rest := text[start:]
	count := 0
	for i := range rest {
		if count == n {
			return rest[:i]
		}
		count++
	}
	return rest
}

// proximityHit is one institution occurrence with a positive amount.
type proximityHit struct {
	institution string
	window      string
	amount      float64
}

// scanProximity finds every occurrence of names and, in the window right
// after each one, the first number following anchor. Occurrences without an
// anchored positive amount are dropped.
func scanProximity(text string, names, anchor *regexp.Regexp) []proximityHit {
	hits := []proximityHit{}
	for _, loc := range names.FindAllStringIndex(text, -1) {
		window := windowAfter(text, loc[1], proximityWindow)
		m := anchor.FindStringSubmatch(window)
		if len(m) < 3 {
			continue
		}
		amount := NormalizeAmount(m[1], m[2])
		if amount == nil || *amount <= 0 {
			continue
		}
		hits = append(hits, proximityHit{
			institution: text[loc[0]:loc[1]],
			window:      window,
			amount:      *amount,
		})
	}
	return hits
}

func classifyLoanType(window string) dto.LoanType {
	lower := strings.ToLower(window)
	switch {
	case containsAny(lower, workingCapitalKeywords):
		return dto.LoanTypeWorking
	case containsAny(lower, facilityKeywords):
		return dto.LoanTypeFacility
	default:
		return dto.LoanTypeOther
	}
}

// ExtractLoanDetails recovers loan and guarantee rows from a detailed credit report
func ExtractLoanDetails(text string) *dto.LoanDetails {
	details := dto.NewLoanDetails()

	for _, hit := range scanProximity(text, bankNamePattern, loanAnchorPattern) {
		details.Loans = append(details.Loans, dto.Loan{
			Institution: hit.institution,
			LoanType:    classifyLoanType(hit.window),
			Amount:      hit.amount,
		})
	}

	for _, hit := range scanProximity(text, guarantorNamePattern, guaranteeAnchorPattern) {
		details.Guarantees = append(details.Guarantees, dto.Guarantee{
			Institution: hit.institution,
			Amount:      hit.amount,
		})
	}

	if len(details.Loans) > 0 {
		total := 0.0
		for _, l := range details.Loans {
			total += l.Amount
		}
		details.TotalLoan = &total
	}
	if len(details.Guarantees) > 0 {
		total := 0.0
		for _, g := range details.Guarantees {
			total += g.Amount
		}
		details.TotalGuarantee = &total
	}
	details.LoanCount = len(details.Loans)

	return &details
}

var (
	collateralPatterns = []struct {
		kind    dto.CollateralType
		pattern *regexp.Regexp
	}{
		{dto.CollateralRealEstate, regexp.MustCompile(`(?:부동산\s*담보|(?i:real\s+estate\s+collateral))\s*[:\s]+` + amountWithUnit)},
		{dto.CollateralGuarantee, regexp.MustCompile(`(?:보증서\s*담보|(?i:guarantee\s+collateral))\s*[:\s]+` + amountWithUnit)},
		{dto.CollateralDeposit, regexp.MustCompile(`(?:예금\s*담보|(?i:deposit\s+collateral))\s*[:\s]+` + amountWithUnit)},
	}

	totalCollateralPatterns = []*regexp.Regexp{
		regexp.MustCompile(`총\s*담보\s*가[액치]\s*[:\s]+` + amountWithUnit),
		regexp.MustCompile(`(?i:total\s+collateral(?:\s+value)?)\s*[:\s]+` + amountWithUnit),
	}
)

// ExtractCollateralDetails extracts collateral entries by type and the stated total.
// The stated total is taken as printed and is not reconciled with the entries.
func ExtractCollateralDetails(text string) *dto.CollateralDetails {
	details := dto.NewCollateralDetails()

	for _, cp := range collateralPatterns {
		for _, m := range cp.pattern.FindAllStringSubmatch(text, -1) {
			if amount := NormalizeAmount(m[1], m[2]); amount != nil {
				details.Collaterals = append(details.Collaterals, dto.Collateral{Type: cp.kind, Amount: *amount})
			}
		}
	}

	for _, re := range totalCollateralPatterns {
		if m := re.FindStringSubmatch(text); len(m) > 2 {
			if amount := NormalizeAmount(m[1], m[2]); amount != nil {
				details.TotalCollateral = amount
				break
			}
		}
	}

	details.CollateralCount = len(details.Collaterals)
	return &details
}
