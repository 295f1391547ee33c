package decimalfp

import "testing"

func TestAdd(t *testing.T) {
	tests := []struct {
		x, y, want string
		prec       int
	}{
		{"1.5", "2.25", "3.75", 2},
		{"1", "2", "3", 0},
		{"1.1", "-1.1", "0.0", 1},
		{"0.1", "0.2", "0.3", 1},
		{"-1.5", "-2.5", "-4.0", 1},
	}
	for _, tc := range tests {
		got := MustParse(tc.x).Add(MustParse(tc.y))
		if got.String() != tc.want {
			t.Errorf("%s+%s = %s, want %s", tc.x, tc.y, got, tc.want)
		}
		if got.Precision() != tc.prec {
			t.Errorf("%s+%s precision = %d, want %d", tc.x, tc.y, got.Precision(), tc.prec)
		}
	}
}

func TestSub(t *testing.T) {
	tests := []struct{ x, y, want string }{
		{"3.75", "2.25", "1.50"},
		{"1", "1", "0"},
		{"1.1", "1.1", "0.0"},
	}
	for _, tc := range tests {
		got := MustParse(tc.x).Sub(MustParse(tc.y))
		if got.String() != tc.want {
			t.Errorf("%s-%s = %s, want %s", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		x, y, want string
		prec       int
	}{
		{"1.5", "2", "3.0", 1},
		{"1.1", "1.1", "1.21", 2},
		{"2", "3", "6", 0},
		{"0.1", "0.1", "0.01", 2},
	}
	for _, tc := range tests {
		got := MustParse(tc.x).Mul(MustParse(tc.y))
		if got.String() != tc.want {
			t.Errorf("%s*%s = %s, want %s", tc.x, tc.y, got, tc.want)
		}
		if got.Precision() != tc.prec {
			t.Errorf("%s*%s precision = %d, want %d", tc.x, tc.y, got.Precision(), tc.prec)
		}
	}
}

func TestQuoExactAndLimited(t *testing.T) {
	// 1/4 terminates exactly.
	q, err := MustParse("1").Quo(MustParse("4"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.String() != "0.25" || q.Precision() != 2 {
		t.Errorf("1/4 = %s (prec %d), want 0.25 (prec 2)", q, q.Precision())
	}

	// 1/3 does not terminate: rounded to LimitPrec fractional digits.
	mode := RoundHalfEven
	q, err = MustParse("1").Quo(MustParse("3"), &mode)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Precision() != LimitPrec {
		t.Errorf("1/3 precision = %d, want %d", q.Precision(), LimitPrec)
	}
	want := "33333333333333333333333333333333" // 32 threes
	if len(want) != LimitPrec {
		t.Fatalf("test bug: want has %d digits, LimitPrec=%d", len(want), LimitPrec)
	}
	if q.Numerator().String() != want {
		t.Errorf("1/3 numerator = %s, want %s", q.Numerator(), want)
	}
}

func TestQuoByZero(t *testing.T) {
	_, err := MustParse("1").Quo(MustParse("0"), nil)
	if err == nil {
		t.Fatal("expected an error dividing by zero")
	}
	if _, ok := err.(*ArithmeticError); !ok {
		t.Fatalf("expected a *ArithmeticError, got %T", err)
	}
}

func TestQuoInteger(t *testing.T) {
	tests := []struct{ x, y, want string }{
		{"7", "2", "3"},
		{"-7", "2", "-4"},
		{"7", "-2", "-4"},
		{"-7", "-2", "3"},
		{"6", "2", "3"},
	}
	for _, tc := range tests {
		got, err := MustParse(tc.x).QuoInteger(MustParse(tc.y))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.String() != tc.want {
			t.Errorf("%s // %s = %s, want %s", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestDivMod(t *testing.T) {
	q, r, err := MustParse("7").DivMod(MustParse("2"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.String() != "3" || r.String() != "1" {
		t.Errorf("DivMod(7,2) = (%s, %s), want (3, 1)", q, r)
	}
	// q*y + r == x
	reconstructed := q.Mul(MustParse("2")).Add(r)
	if !reconstructed.Equal(MustParse("7")) {
		t.Errorf("q*y+r = %s, want 7", reconstructed)
	}
}

func TestPow(t *testing.T) {
	tests := []struct {
		x    string
		n    int
		want string
	}{
		{"2", 0, "1"},
		{"2", 1, "2"},
		{"2", 10, "1024"},
		{"1.5", 2, "2.25"},
	}
	for _, tc := range tests {
		got, err := MustParse(tc.x).Pow(tc.n, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.String() != tc.want {
			t.Errorf("%s**%d = %s, want %s", tc.x, tc.n, got, tc.want)
		}
	}

	got, err := MustParse("2").Pow(-1, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "0.5" {
		t.Errorf("2**-1 = %s, want 0.5", got)
	}

	if _, err := MustParse("0").Pow(-1, nil); err == nil {
		t.Fatal("expected an error raising zero to a negative power")
	}
}
