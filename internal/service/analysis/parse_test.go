package analysis

import "testing"

func TestParsePrediction(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want ParsedPrediction
	}{
		{
			name: "full string",
			raw:  "Melanoma,82.5%,urgent referral recommended",
			want: ParsedPrediction{Diagnosis: "Melanoma", Confidence: 0.83, Remarks: "urgent referral recommended"},
		},
		{
			name: "remarks containing commas",
			raw:  "Eczema,90%,mild, recurring, monitor closely",
			want: ParsedPrediction{Diagnosis: "Eczema", Confidence: 0.90, Remarks: "mild, recurring, monitor closely"},
		},
		{
			name: "no percent sign",
			raw:  "Psoriasis,75,chronic",
			want: ParsedPrediction{Diagnosis: "Psoriasis", Confidence: 0.75, Remarks: "chronic"},
		},
		{
			name: "two fields only",
			raw:  "Acne,60%",
			want: ParsedPrediction{Diagnosis: "Acne", Confidence: 0.60},
		},
		{
			name: "single field",
			raw:  "Melanoma",
			want: ParsedPrediction{Diagnosis: "Unknown"},
		},
		{
			name: "empty string",
			raw:  "",
			want: ParsedPrediction{Diagnosis: "Unknown"},
		},
		{
			name: "unparseable percent",
			raw:  "Rosacea,high,seen before",
			want: ParsedPrediction{Diagnosis: "Rosacea", Confidence: 0, Remarks: "seen before"},
		},
		{
			name: "whitespace around fields",
			raw:  " Melanoma , 82.5% , follow up ",
			want: ParsedPrediction{Diagnosis: "Melanoma", Confidence: 0.83, Remarks: "follow up"},
		},
		{
			name: "half rounds away from zero",
			raw:  "X,0.5%,",
			want: ParsedPrediction{Diagnosis: "X", Confidence: 0.01, Remarks: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePrediction(tt.raw)
			if got != tt.want {
				t.Errorf("ParsePrediction(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}
