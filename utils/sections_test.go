package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSectionsPhysicalOrder(t *testing.T) {
	text := `## [2. 세무 절세 전략]
tax body

## [0. 기업 현황 요약]
overview body

## [1. 자금조달 전략]
financing body`

	sections := SplitSections(text, ReportHeadings[:3])

	assert.Equal(t, "## [0. 기업 현황 요약]\noverview body", sections["section0"])
	assert.Equal(t, "## [1. 자금조달 전략]\nfinancing body", sections["section1"])
	assert.Equal(t, "## [2. 세무 절세 전략]\ntax body", sections["section2"])
}

func TestSplitSectionsMissingHeading(t *testing.T) {
	text := "# 0. Company Overview\nfine\n# 4. Policy Funding\nloans"

	sections := SplitSections(text, ReportHeadings)

	assert.Len(t, sections, len(ReportHeadings))
	assert.Equal(t, "# 0. Company Overview\nfine", sections["section0"])
	assert.Equal(t, "# 4. Policy Funding\nloans", sections["section4"])
	for _, key := range []string{"section1", "section2", "section3", "section5"} {
		assert.Equal(t, "", sections[key], key)
	}
}

func TestSplitSectionsNoHeadings(t *testing.T) {
	sections := SplitSections("plain narrative without structure", ReportHeadings)

	for _, h := range ReportHeadings {
		assert.Equal(t, "", sections[h.Key])
	}
}
