package phone

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "+963911234567", want: "+963911234567"},
		{raw: "0911234567", want: "+963911234567"},
		{raw: "911234567", want: "+963911234567"},
		{raw: "05301234567", want: "+905301234567"},
		{raw: "5301234567", want: "+905301234567"},
		{raw: " 0911234567 ", want: "+963911234567"},
		{raw: "0044123", want: "0044123"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := Normalize(tt.raw); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDigitsOnly(t *testing.T) {
	if got := DigitsOnly("+963 (91) 123-4567"); got != "963911234567" {
		t.Fatalf("DigitsOnly = %q", got)
	}
	if got := DigitsOnly("abc"); got != "" {
		t.Fatalf("DigitsOnly(non-digits) = %q, want empty", got)
	}
}

func TestSuffixMatch(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		query  string
		want   bool
	}{
		{name: "local query against international stored", stored: "+963911234567", query: "0911234567", want: true},
		{name: "international query against local stored", stored: "0911234567", query: "+963911234567", want: true},
		{name: "turkish local query against international stored", stored: "+905301234567", query: "05301234567", want: true},
		{name: "short suffix query", stored: "+963911234567", query: "1234567", want: true},
		{name: "stored is suffix of longer query", stored: "911234567", query: "+963911234567", want: true},
		{name: "identical", stored: "0911234567", query: "0911234567", want: true},
		{name: "different tail", stored: "+963911234567", query: "7654321", want: false},
		{name: "empty query", stored: "+963911234567", query: "", want: false},
		{name: "empty stored", stored: "", query: "123", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SuffixMatch(tt.stored, tt.query); got != tt.want {
				t.Fatalf("SuffixMatch(%q, %q) = %v, want %v", tt.stored, tt.query, got, tt.want)
			}
		})
	}
}

func TestMask(t *testing.T) {
	if got := Mask("+963911234567"); got != "*********4567" {
		t.Fatalf("Mask = %q", got)
	}
	if got := Mask("123"); got != "123" {
		t.Fatalf("Mask(short) = %q", got)
	}
}
