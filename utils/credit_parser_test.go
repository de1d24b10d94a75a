package utils

import (
	"strings"
	"testing"

	"github.com/Aashish23092/credit-report-analyzer/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLoanDetailsWindow(t *testing.T) {
	text := "Lender: Example-Bank  working capital line, loan receivable balance 30 as of 2024"

	details := ExtractLoanDetails(text)

	require.Len(t, details.Loans, 1)
	assert.Equal(t, "Example-Bank", details.Loans[0].Institution)
	assert.Equal(t, dto.LoanTypeWorking, details.Loans[0].LoanType)
	assert.Equal(t, 30.0, details.Loans[0].Amount)
	require.NotNil(t, details.TotalLoan)
	assert.Equal(t, 30.0, *details.TotalLoan)
	assert.Equal(t, 1, details.LoanCount)
}

func TestExtractLoanDetailsNoAnchorNoRecord(t *testing.T) {
	text := "Example-Bank branch visit scheduled, contact 02-1234"

	details := ExtractLoanDetails(text)

	assert.Empty(t, details.Loans)
	assert.Nil(t, details.TotalLoan)
	assert.Equal(t, 0, details.LoanCount)
}

func TestExtractLoanDetailsAnchorOutsideWindow(t *testing.T) {
	text := "Example-Bank" + strings.Repeat(" ", proximityWindow) + "loan receivable 30"

	details := ExtractLoanDetails(text)

	assert.Empty(t, details.Loans)
}

func TestExtractLoanDetailsZeroAmountSkipped(t *testing.T) {
	details := ExtractLoanDetails("국민은행\n대출채권일반자금(운전)\n0\n-\n0")

	assert.Empty(t, details.Loans)
	assert.Nil(t, details.TotalLoan)
}

func TestExtractLoanDetailsCretopTable(t *testing.T) {
	text := `세부신용공여
국민은행
대출채권일반자금(운전）
30
-
30
신한은행
대출채권시설자금
120
-
120
새마을금고
대출채권기타
15
신용보증기금
일반보증
50
서울신용보증재단
보증 20
`

	details := ExtractLoanDetails(text)

	require.Len(t, details.Loans, 3)
	assert.Equal(t, dto.Loan{Institution: "국민은행", LoanType: dto.LoanTypeWorking, Amount: 30}, details.Loans[0])
	assert.Equal(t, dto.Loan{Institution: "신한은행", LoanType: dto.LoanTypeFacility, Amount: 120}, details.Loans[1])
	assert.Equal(t, "새마을금고", details.Loans[2].Institution)
	assert.Equal(t, 15.0, details.Loans[2].Amount)
	require.NotNil(t, details.TotalLoan)
	assert.Equal(t, 165.0, *details.TotalLoan)
	assert.Equal(t, 3, details.LoanCount)

	require.Len(t, details.Guarantees, 2)
	assert.Equal(t, dto.Guarantee{Institution: "신용보증기금", Amount: 50}, details.Guarantees[0])
	assert.Equal(t, dto.Guarantee{Institution: "서울신용보증재단", Amount: 20}, details.Guarantees[1])
	require.NotNil(t, details.TotalGuarantee)
	assert.Equal(t, 70.0, *details.TotalGuarantee)
}

func TestExtractLoanDetailsEveryOccurrence(t *testing.T) {
	text := "국민은행 대출채권 10\n" + strings.Repeat("-", proximityWindow) + "\n국민은행 대출채권 25"

	details := ExtractLoanDetails(text)

	require.Len(t, details.Loans, 2)
	assert.Equal(t, 10.0, details.Loans[0].Amount)
	assert.Equal(t, 25.0, details.Loans[1].Amount)
}

func TestExtractCollateralDetails(t *testing.T) {
	text := `담보기록
부동산담보 : 1,500 백만원
부동산 담보 : 3 억
보증서담보 : 200 백만원
예금담보 : 50,000 천원
총 담보가액 : 2,000 백만원
`

	details := ExtractCollateralDetails(text)

	require.Len(t, details.Collaterals, 4)
	assert.Equal(t, dto.Collateral{Type: dto.CollateralRealEstate, Amount: 1500}, details.Collaterals[0])
	assert.Equal(t, dto.Collateral{Type: dto.CollateralRealEstate, Amount: 300}, details.Collaterals[1])
	assert.Equal(t, dto.Collateral{Type: dto.CollateralGuarantee, Amount: 200}, details.Collaterals[2])
	assert.Equal(t, dto.Collateral{Type: dto.CollateralDeposit, Amount: 50}, details.Collaterals[3])
	assert.Equal(t, 4, details.CollateralCount)

	// The stated total is kept as printed, not recomputed.
	require.NotNil(t, details.TotalCollateral)
	assert.Equal(t, 2000.0, *details.TotalCollateral)
}

func TestExtractCollateralDetailsEmpty(t *testing.T) {
	details := ExtractCollateralDetails("no collateral here")

	assert.Empty(t, details.Collaterals)
	assert.Nil(t, details.TotalCollateral)
	assert.True(t, details.IsEmpty())
}

func TestExtractLoanDetailsWindowsOverlap(t *testing.T) {
	// The first bank has no amount of its own; its window reaches the next row.
	details := ExtractLoanDetails("국민은행\n비고\n신한은행\n대출채권 120")

	require.Len(t, details.Loans, 2)
	assert.Equal(t, "국민은행", details.Loans[0].Institution)
	assert.Equal(t, "신한은행", details.Loans[1].Institution)
	assert.Equal(t, 120.0, details.Loans[0].Amount)
	require.NotNil(t, details.TotalLoan)
	assert.Equal(t, 240.0, *details.TotalLoan)
}
