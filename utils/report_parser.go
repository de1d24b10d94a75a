package utils

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Aashish23092/credit-report-analyzer/dto"
)

// amountWithUnit captures a number and the unit token that follows it.
const amountWithUnit = `(-?[0-9][0-9,]*(?:\.[0-9]+)?)\s*(억원|억|백만원|천원|원|(?i:hundred\s+million|million|thousand|won|krw))`

const datePattern = `(\d{4}[-/.년\s]+\d{1,2}[-/.월\s]+\d{1,2})`

// financialSeriesLimit caps revenue, operating income, net income and total
// assets at the first matches in document order.
const financialSeriesLimit = 3

// scalarRule extracts one candidate value for a field.
type scalarRule func(text string) (string, bool)

// captureRule returns the first capture group of pattern, trimmed.
func captureRule(pattern string) scalarRule {
	re := regexp.MustCompile(pattern)
	return func(text string) (string, bool) {
		matches := re.FindStringSubmatch(text)
		if len(matches) < 2 {
			return "", false
		}
		value := strings.TrimSpace(matches[1])
		return value, value != ""
	}
}

func captureRules(patterns ...string) []scalarRule {
	rules := make([]scalarRule, 0, len(patterns))
	for _, p := range patterns {
		rules = append(rules, captureRule(p))
	}
	return rules
}

// firstMatch evaluates rules in order and returns the first value found.
func firstMatch(text string, rules []scalarRule) *string {
	for _, rule := range rules {
		if value, ok := rule(text); ok {
			return &value
		}
	}
	return nil
}

var (
	companyNameRules = captureRules(
		`기업명\s*[:\s]+([^\n\r]+)`,
		`상호\s*[:\s]+([^\n\r]+)`,
		`법인명\s*[:\s]+([^\n\r]+)`,
		`회사명\s*[:\s]+([^\n\r]+)`,
		`업체명\s*[:\s]+([^\n\r]+)`,
		`(?i)company\s+name\s*[:\s]+([^\n\r]+)`,
	)

	registrationNumberRules = captureRules(
		`사업자\s*번호\s*[:\s]+(\d{3}[-\s]+\d{2}[-\s]+\d{5})`,
		`사업자\s*등록\s*번호\s*[:\s]+(\d{3}[-\s]+\d{2}[-\s]+\d{5})`,
		`(?i)business\s+registration\s+(?:no\.?|number)\s*[:\s]+(\d{3}[-\s]+\d{2}[-\s]+\d{5})`,
		`법인\s*등록\s*번호\s*[:\s]+(\d{6}[-\s]+\d{7})`,
		`(?i)corporate\s+registration\s+(?:no\.?|number)\s*[:\s]+(\d{6}[-\s]+\d{7})`,
		// CRETOP exports often print the number bare with spaced hyphens.
		`(\d{3}\s*-\s*\d{2}\s*-\s*\d{5})`,
	)

	ceoRules = captureRules(
		`대표자\s*[:\s]+([^\n\r]+)`,
		`대표이사\s*[:\s]+([^\n\r]+)`,
		`대표\s*[:\s]+([^\n\r]+)`,
		`(?i)(?:ceo|representative)\s*[:\s]+([^\n\r]+)`,
	)

	industryRules = captureRules(
		`업종\s*[:\s]+([^\n\r]+)`,
		`주\s*업종\s*[:\s]+([^\n\r]+)`,
		`사업\s*내용\s*[:\s]+([^\n\r]+)`,
		`(?i)industry\s*[:\s]+([^\n\r]+)`,
	)

	establishedDateRules = captureRules(
		`설립일자?\s*[:\s]+`+datePattern,
		`창립일자?\s*[:\s]+`+datePattern,
		`개업일자?\s*[:\s]+`+datePattern,
		`(?i)(?:established|founded)(?:\s+date)?\s*[:\s]+`+datePattern,
	)

	employeeCountRules = captureRules(
		`종업원\s*수?\s*[:\s]+([\d,]+)\s*명?`,
		`직원\s*수?\s*[:\s]+([\d,]+)\s*명?`,
		`임직원\s*수?\s*[:\s]+([\d,]+)\s*명?`,
		`(?i)employees\s*[:\s]+([\d,]+)`,
	)

	phoneRules = captureRules(
		`전화\s*번?호?\s*[:\s]+([\d\-()]+)`,
		`(?i)(?:phone|tel)\.?\s*[:\s]+([\d\-()]+)`,
	)

	addressRules = captureRules(
		`주\s*소\s*[:\s]+([^\n\r]+(?:시|구|동|로|길)[^\n\r]*)`,
		`소재지\s*[:\s]+([^\n\r]+(?:시|구|동|로|길)[^\n\r]*)`,
		`본점\s*소재지\s*[:\s]+([^\n\r]+(?:시|구|동|로|길)[^\n\r]*)`,
		`(?i)address\s*[:\s]+([^\n\r]+)`,
	)

	registrationSeparators = regexp.MustCompile(`[-\s]+`)
	whitespaceRuns         = regexp.MustCompile(`\s+`)
)

// ExtractCompanyInfo extracts company identity fields from report text
func ExtractCompanyInfo(text string) *dto.CompanyInfo {
	info := &dto.CompanyInfo{
		Name:            firstMatch(text, companyNameRules),
		Industry:        firstMatch(text, industryRules),
		EstablishedDate: firstMatch(text, establishedDateRules),
		Address:         firstMatch(text, addressRules),
		Phone:           firstMatch(text, phoneRules),
	}

	if reg := firstMatch(text, registrationNumberRules); reg != nil {
		normalized := registrationSeparators.ReplaceAllString(*reg, "-")
		info.RegistrationNumber = &normalized
	}

	if ceo := firstMatch(text, ceoRules); ceo != nil {
		collapsed := whitespaceRuns.ReplaceAllString(*ceo, " ")
		info.CEO = &collapsed
	}

	if emp := firstMatch(text, employeeCountRules); emp != nil {
		if n, err := strconv.Atoi(strings.ReplaceAll(*emp, ",", "")); err == nil {
			info.EmployeeCount = &n
		}
	}

	return info
}

var (
	revenuePattern          = regexp.MustCompile(`(?:매출액|(?i:revenue|sales))\s*[:\s]+` + amountWithUnit)
	operatingIncomePattern  = regexp.MustCompile(`(?:영업이익|(?i:operating\s+income))\s*[:\s]+` + amountWithUnit)
	netIncomePattern        = regexp.MustCompile(`(?:당기순?이익|(?i:net\s+income))\s*[:\s]+` + amountWithUnit)
	totalAssetsPattern      = regexp.MustCompile(`(?:총\s*자산|(?i:total\s+assets))\s*[:\s]+` + amountWithUnit)
	totalLiabilitiesPattern = regexp.MustCompile(`(?:총\s*부채|(?i:total\s+liabilities))\s*[:\s]+` + amountWithUnit)
	equityPattern           = regexp.MustCompile(`(?:자본총?계|(?i:total\s+equity))\s*[:\s]+` + amountWithUnit)

	debtRatioRules    = captureRules(`부채비율\s*[:\s]+(-?[0-9.]+)\s*%?`, `(?i)debt\s+ratio\s*[:\s]+(-?[0-9.]+)\s*%?`)
	currentRatioRules = captureRules(`유동비율\s*[:\s]+(-?[0-9.]+)\s*%?`, `(?i)current\s+ratio\s*[:\s]+(-?[0-9.]+)\s*%?`)
	quickRatioRules   = captureRules(`당좌비율\s*[:\s]+(-?[0-9.]+)\s*%?`, `(?i)quick\s+ratio\s*[:\s]+(-?[0-9.]+)\s*%?`)
	roeRules          = captureRules(`(?:ROE|자기자본이익률)\s*[:\s]+(-?[0-9.]+)\s*%?`, `(?i)return\s+on\s+equity\s*[:\s]+(-?[0-9.]+)\s*%?`)
	roaRules          = captureRules(`(?:ROA|총자산이익률)\s*[:\s]+(-?[0-9.]+)\s*%?`, `(?i)return\s+on\s+assets\s*[:\s]+(-?[0-9.]+)\s*%?`)
)

// ExtractFinancialData extracts multi-year amounts and ratio metrics
func ExtractFinancialData(text string) *dto.FinancialData {
	data := dto.NewFinancialData()

	data.Revenue = truncateSeries(allAmounts(text, revenuePattern))
	data.OperatingIncome = truncateSeries(allAmounts(text, operatingIncomePattern))
	data.NetIncome = truncateSeries(allAmounts(text, netIncomePattern))
	data.TotalAssets = truncateSeries(allAmounts(text, totalAssetsPattern))
	data.TotalLiabilities = allAmounts(text, totalLiabilitiesPattern)
	data.Equity = allAmounts(text, equityPattern)

	data.DebtRatio = parseFloatPtr(firstMatch(text, debtRatioRules))
	data.CurrentRatio = parseFloatPtr(firstMatch(text, currentRatioRules))
	data.QuickRatio = parseFloatPtr(firstMatch(text, quickRatioRules))
	data.ROE = parseFloatPtr(firstMatch(text, roeRules))
	data.ROA = parseFloatPtr(firstMatch(text, roaRules))

	return &data
}

// allAmounts applies re across the whole text and normalizes every match.
func allAmounts(text string, re *regexp.Regexp) []float64 {
	amounts := []float64{}
	for _, match := range re.FindAllStringSubmatch(text, -1) {
		if amount := NormalizeAmount(match[1], match[2]); amount != nil {
			amounts = append(amounts, *amount)
		}
	}
	return amounts
}

func truncateSeries(values []float64) []float64 {
	if len(values) > financialSeriesLimit {
		return values[:financialSeriesLimit]
	}
	return values
}

func parseFloatPtr(s *string) *float64 {
	if s == nil {
		return nil
	}
	v, err := strconv.ParseFloat(*s, 64)
	if err != nil {
		return nil
	}
	return &v
}

var (
	creditRatingRules = captureRules(
		`신용등급\s*[:\s]+([A-Za-z0-9+-]+)`,
		`기업신용등급\s*[:\s]+([A-Za-z0-9+-]+)`,
		`등급\s*[:\s]+([A-Za-z0-9+-]+)`,
		`(?i)credit\s+rating\s*[:\s]+([A-Za-z0-9+-]+)`,
	)

	ratingAgencyRules = captureRules(
		`평가기관\s*[:\s]+([^\n\r]+)`,
		`(?i)rating\s+agency\s*[:\s]+([^\n\r]+)`,
	)

	ratingDateRules = captureRules(
		`평가일자?\s*[:\s]+`+datePattern,
		`등급\s*기준일\s*[:\s]+`+datePattern,
		`(?i)rating\s+date\s*[:\s]+`+datePattern,
	)

	creditLimitPatterns = []*regexp.Regexp{
		regexp.MustCompile(`신용한도\s*[:\s]+` + amountWithUnit),
		regexp.MustCompile(`(?i:credit\s+limit)\s*[:\s]+` + amountWithUnit),
	}

	defaultMarkers = []*regexp.Regexp{
		regexp.MustCompile(`연체|부도|불량|(?i:default)`),
		regexp.MustCompile(`신용\s*불량`),
		regexp.MustCompile(`대출\s*연체`),
	}
)

// ExtractCreditInfo extracts rating, limit and delinquency markers
func ExtractCreditInfo(text string) *dto.CreditInfo {
	info := &dto.CreditInfo{
		CreditRating: firstMatch(text, creditRatingRules),
		RatingAgency: firstMatch(text, ratingAgencyRules),
		RatingDate:   firstMatch(text, ratingDateRules),
	}

	for _, re := range creditLimitPatterns {
		if m := re.FindStringSubmatch(text); len(m) > 2 {
			if amount := NormalizeAmount(m[1], m[2]); amount != nil {
				info.CreditLimit = amount
				break
			}
		}
	}

	for _, re := range defaultMarkers {
		if re.MatchString(text) {
			flagged := true
			info.DefaultHistoryFlag = &flagged
			break
		}
	}

	return info
}

var (
	mainProductRules = captureRules(
		`주요\s*제품\s*[:\s]+([^\n\r]+)`,
		`(?i)main\s+products?\s*[:\s]+([^\n\r]+)`,
	)

	productSeparators = regexp.MustCompile(`[,、]`)

	certificationPattern = regexp.MustCompile(`벤처기업|벤처인증|이노비즈|(?i:inno-?biz)|메인비즈|(?i:main-?biz)|(?i:ISO)\s*\d+|특허|지식재산권|(?i:patent)`)

	exportRatioRules = captureRules(
		`수출\s*비중\s*[:\s]+([0-9.]+)\s*%`,
		`(?i)export\s+ratio\s*[:\s]+([0-9.]+)\s*%`,
	)
)

// ExtractBusinessInfo extracts products, certifications and export share
func ExtractBusinessInfo(text string) *dto.BusinessInfo {
	info := dto.NewBusinessInfo()

	if products := firstMatch(text, mainProductRules); products != nil {
		for _, p := range productSeparators.Split(*products, -1) {
			if p = strings.TrimSpace(p); p != "" {
				info.MainProducts = append(info.MainProducts, p)
			}
		}
	}

	// Every mention counts, so repeated certifications stay repeated.
	info.Certifications = append(info.Certifications, certificationPattern.FindAllString(text, -1)...)

	info.ExportRatio = parseFloatPtr(firstMatch(text, exportRatioRules))

	return &info
}

// ExtractFragment runs every extractor that applies to docType. Company,
// financial and credit data are extracted from every document.
func ExtractFragment(text string, docType dto.DocType) dto.DocumentFragment {
	fragment := dto.DocumentFragment{
		DocType:   docType,
		Company:   ExtractCompanyInfo(text),
		Financial: ExtractFinancialData(text),
		Credit:    ExtractCreditInfo(text),
	}

	switch docType {
	case dto.DocTypeCompanyReport:
		fragment.Business = ExtractBusinessInfo(text)
	case dto.DocTypeCreditDetail:
		fragment.Loan = ExtractLoanDetails(text)
	case dto.DocTypeCollateralRecord:
		fragment.Collateral = ExtractCollateralDetails(text)
	}

	return fragment
}
