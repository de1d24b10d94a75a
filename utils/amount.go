package utils

import (
	"math"
	"strconv"
	"strings"
)

type unitScale struct {
	multiply float64
	divide   float64
}

// unitScales converts a unit token into millions of currency units.
var unitScales = map[string]unitScale{
	"억":               {multiply: 100, divide: 1},
	"억원":              {multiply: 100, divide: 1},
	"hundred million": {multiply: 100, divide: 1},
	"백만원":             {multiply: 1, divide: 1},
	"million":         {multiply: 1, divide: 1},
	"천원":              {multiply: 1, divide: 1000},
	"thousand":        {multiply: 1, divide: 1000},
	"원":               {multiply: 1, divide: 1000000},
	"won":             {multiply: 1, divide: 1000000},
	"krw":             {multiply: 1, divide: 1000000},
}

// NormalizeAmount parses valueText and scales it into millions according to unit.
// Unknown units are taken as already being in millions. Returns nil when the
// value is not a number.
func NormalizeAmount(valueText, unit string) *float64 {
	amountStr := strings.ReplaceAll(strings.TrimSpace(valueText), ",", "")
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil
	}

	key := strings.ToLower(strings.Join(strings.Fields(unit), " "))
	if scale, ok := unitScales[key]; ok {
		amount = amount * scale.multiply / scale.divide
	}
	return &amount
}
