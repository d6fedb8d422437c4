package analysis

import (
	"math"
	"strconv"
	"strings"
)

// ParsedPrediction is the structured form of the service's delimited
// "label,confidence%,remarks" string.
type ParsedPrediction struct {
	Diagnosis  string
	Confidence float64
	Remarks    string
}

// ParsePrediction splits the raw prediction string. The first field is
// the diagnosis, the second a percentage (trailing "%" optional), and
// everything after the second comma is remarks, commas preserved.
// Fewer than two fields yields ("Unknown", 0, ""); an unparseable
// percentage yields confidence 0.
func ParsePrediction(raw string) ParsedPrediction {
	parts := strings.Split(raw, ",")
	if len(parts) < 2 {
		return ParsedPrediction{Diagnosis: "Unknown"}
	}

	out := ParsedPrediction{
		Diagnosis: strings.TrimSpace(parts[0]),
	}
	if len(parts) > 2 {
		out.Remarks = strings.TrimSpace(strings.Join(parts[2:], ","))
	}

	pct := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(parts[1]), "%"))
	if v, err := strconv.ParseFloat(pct, 64); err == nil {
		// Normalize percent to 0..1 with two-decimal rounding,
		// half away from zero (82.5% -> 0.83).
		out.Confidence = math.Round(v) / 100
	}

	return out
}
