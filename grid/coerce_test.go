package grid

import "testing"

func TestCoerce_Integers(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"0", 0},
		{"30", 30},
		{"-5", -5},
		{"+7", 7},
		{"007", 7}, // leading zeros are a documented loss
	}

	for _, tt := range tests {
		got := Coerce(tt.in)
		v, ok := got.(int)
		if !ok {
			t.Errorf("Coerce(%q) = %T(%v), want int", tt.in, got, got)
			continue
		}
		if v != tt.want {
			t.Errorf("Coerce(%q) = %d, want %d", tt.in, v, tt.want)
		}
	}
}

func TestCoerce_Floats(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"19.99", 19.99},
		{"-0.5", -0.5},
		{"+3.14", 3.14},
		{"1.5e3", 1500},
		{"2.5E-1", 0.25},
	}

	for _, tt := range tests {
		got := Coerce(tt.in)
		v, ok := got.(float64)
		if !ok {
			t.Errorf("Coerce(%q) = %T(%v), want float64", tt.in, got, got)
			continue
		}
		if v != tt.want {
			t.Errorf("Coerce(%q) = %g, want %g", tt.in, v, tt.want)
		}
	}
}

func TestCoerce_Strings(t *testing.T) {
	// Anything that fails the numeric patterns comes back unchanged.
	inputs := []string{
		"",
		"Hello",
		"New York",
		"1,000",  // thousands separators are not recognized
		"1.2.3",  // two decimal points
		"1e5",    // exponent without decimal point
		".5",     // no integer part
		"5.",     // no fractional part
		"12 34",  // internal whitespace
		"$19.99", // currency prefix
		"Inf",
		"NaN",
	}

	for _, in := range inputs {
		got := Coerce(in)
		v, ok := got.(string)
		if !ok {
			t.Errorf("Coerce(%q) = %T(%v), want string", in, got, got)
			continue
		}
		if v != in {
			t.Errorf("Coerce(%q) = %q, want input unchanged", in, v)
		}
	}
}

func TestCoerce_IntOverflowDegradesToFloat(t *testing.T) {
	// Matches the integer pattern but exceeds int range.
	got := Coerce("99999999999999999999")
	if _, ok := got.(float64); !ok {
		t.Errorf("Coerce(overflowing integer) = %T(%v), want float64", got, got)
	}
}

func TestCoerce_Deterministic(t *testing.T) {
	inputs := []string{"30", "19.99", "Hello", "", "1,000"}
	for _, in := range inputs {
		first := Coerce(in)
		for i := 0; i < 3; i++ {
			if got := Coerce(in); got != first {
				t.Errorf("Coerce(%q) not deterministic: %v then %v", in, first, got)
			}
		}
	}
}
