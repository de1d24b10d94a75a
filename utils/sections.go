package utils

import (
	"regexp"
	"sort"
	"strings"
)

// SectionHeading names a section and the pattern marking where it starts.
type SectionHeading struct {
	Key     string
	Pattern *regexp.Regexp
}

// ReportHeadings is the fixed heading list of the generated consulting report.
var ReportHeadings = []SectionHeading{
	{Key: "section0", Pattern: regexp.MustCompile(`(?i)##?\s*\[?0\.?\s*(?:기업\s*현황\s*요약|company\s+overview)\]?`)},
	{Key: "section1", Pattern: regexp.MustCompile(`(?i)##?\s*\[?1\.?\s*(?:자금조달\s*전략|financing\s+strategy)\]?`)},
	{Key: "section2", Pattern: regexp.MustCompile(`(?i)##?\s*\[?2\.?\s*(?:세무\s*절세|tax\s+planning)`)},
	{Key: "section3", Pattern: regexp.MustCompile(`(?i)##?\s*\[?3\.?\s*(?:기업인증|certification)`)},
	{Key: "section4", Pattern: regexp.MustCompile(`(?i)##?\s*\[?4\.?\s*(?:정책자금|policy\s+funding)`)},
	{Key: "section5", Pattern: regexp.MustCompile(`(?i)##?\s*\[?5\.?\s*(?:정부지원금|government\s+grants)`)},
}

// SplitSections slices text at the first occurrence of each heading. Slices
// follow the order headings appear in the text, not the declaration order,
// and a heading that never appears maps to "".
func SplitSections(text string, headings []SectionHeading) map[string]string {
	type position struct {
		key   string
		index int
	}

	sections := make(map[string]string, len(headings))
	positions := make([]position, 0, len(headings))

	for _, h := range headings {
		sections[h.Key] = ""
		if loc := h.Pattern.FindStringIndex(text); loc != nil {
			positions = append(positions, position{key: h.Key, index: loc[0]})
		}
	}

	sort.SliceStable(positions, func(i, j int) bool {
		return positions[i].index < positions[j].index
	})

	for i, pos := range positions {
		end := len(text)
		if i < len(positions)-1 {
			end = positions[i+1].index
		}
		sections[pos.key] = strings.TrimSpace(text[pos.index:end])
	}

	return sections
}
