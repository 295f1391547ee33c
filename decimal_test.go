package decimalfp

import "testing"

func TestZeroCanonicalization(t *testing.T) {
	tests := []string{"0", "-0", "0.0000", "-0.00"}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			d := MustParse(s)
			if d.Sign() != 0 {
				t.Fatalf("Sign() = %d, want 0", d.Sign())
			}
			if d.IsNeg() {
				t.Fatal("IsNeg() = true for a zero value")
			}
			if !d.IsZero() {
				t.Fatal("IsZero() = false")
			}
		})
	}
}

func TestSignAndIsNeg(t *testing.T) {
	tests := []struct {
		s    string
		sign int
		neg  bool
	}{
		{"1", 1, false},
		{"-1", -1, true},
		{"0", 0, false},
		{"0.001", 1, false},
		{"-0.001", -1, true},
	}
	for _, tc := range tests {
		d := MustParse(tc.s)
		if d.Sign() != tc.sign {
			t.Errorf("%s: Sign() = %d, want %d", tc.s, d.Sign(), tc.sign)
		}
		if d.IsNeg() != tc.neg {
			t.Errorf("%s: IsNeg() = %v, want %v", tc.s, d.IsNeg(), tc.neg)
		}
	}
}

func TestIsInt(t *testing.T) {
	tests := []struct {
		s  string
		is bool
	}{
		{"1", true},
		{"1.0", true},
		{"1.00", true},
		{"1.01", false},
		{"100.000", true},
		{"0", true},
		{"0.1", false},
		{"0.0000", true},
	}
	for _, tc := range tests {
		if got := MustParse(tc.s).IsInt(); got != tc.is {
			t.Errorf("IsInt(%s) = %v, want %v", tc.s, got, tc.is)
		}
	}
}

func TestPrecision(t *testing.T) {
	tests := []struct {
		s    string
		prec int
	}{
		{"1", 0},
		{"1.5", 1},
		{"1.50", 2},
		{"0.00015", 5},
	}
	for _, tc := range tests {
		if got := MustParse(tc.s).Precision(); got != tc.prec {
			t.Errorf("Precision(%s) = %d, want %d", tc.s, got, tc.prec)
		}
	}
}

func TestMagnitude(t *testing.T) {
	tests := []struct {
		s   string
		mag int
	}{
		{"1", 0},
		{"9", 0},
		{"10", 1},
		{"999", 2},
		{"0.1", -1},
		{"0.01", -2},
		{"123.45", 2},
	}
	for _, tc := range tests {
		m, err := MustParse(tc.s).Magnitude()
		if err != nil {
			t.Fatalf("Magnitude(%s): unexpected error %v", tc.s, err)
		}
		if m != tc.mag {
			t.Errorf("Magnitude(%s) = %d, want %d", tc.s, m, tc.mag)
		}
	}
}

func TestMagnitudeOfZero(t *testing.T) {
	_, err := MustParse("0").Magnitude()
	if err == nil {
		t.Fatal("expected an error for Magnitude of zero")
	}
	if _, ok := err.(*ValueError); !ok {
		t.Fatalf("expected a *ValueError, got %T", err)
	}
}

func TestNegAbs(t *testing.T) {
	d := MustParse("12.34")
	if got := d.Neg().String(); got != "-12.34" {
		t.Errorf("Neg() = %s, want -12.34", got)
	}
	if got := d.Neg().Neg().String(); got != "12.34" {
		t.Errorf("Neg().Neg() = %s, want 12.34", got)
	}
	if got := d.Neg().Abs().String(); got != "12.34" {
		t.Errorf("Neg().Abs() = %s, want 12.34", got)
	}
	if got := d.Abs().String(); got != "12.34" {
		t.Errorf("Abs() = %s, want 12.34", got)
	}
}

func TestRealImag(t *testing.T) {
	d := MustParse("3.5")
	if !d.Real().Equal(d) {
		t.Errorf("Real() = %v, want %v", d.Real(), d)
	}
	if !d.Imag().IsZero() {
		t.Errorf("Imag() = %v, want 0", d.Imag())
	}
}
