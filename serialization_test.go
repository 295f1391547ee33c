package decimalfp

import (
	"encoding/json"
	"testing"
)

func TestTextMarshalRoundTrip(t *testing.T) {
	d := MustParse("123.456")
	text, err := d.MarshalText()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got Decimal
	if err := got.UnmarshalText(text); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(d) || got.Precision() != d.Precision() {
		t.Errorf("round trip = %v (prec %d), want %v (prec %d)", got, got.Precision(), d, d.Precision())
	}
}

func TestJSONMarshalRoundTrip(t *testing.T) {
	type wrapper struct {
		Value Decimal `json:"value"`
	}
	w := wrapper{Value: MustParse("9.875")}
	data, err := json.Marshal(w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"value":9.875}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var got wrapper
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Value.Equal(w.Value) {
		t.Errorf("Unmarshal = %v, want %v", got.Value, w.Value)
	}
}

func TestJSONUnmarshalQuotedString(t *testing.T) {
	var d Decimal
	if err := d.UnmarshalJSON([]byte(`"1.50"`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.String() != "1.50" {
		t.Errorf("UnmarshalJSON(quoted) = %s, want 1.50", d)
	}
}

func TestJSONUnmarshalNull(t *testing.T) {
	d := MustParse("5")
	if err := d.UnmarshalJSON([]byte("null")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.String() != "5" {
		t.Errorf("UnmarshalJSON(null) should leave d unchanged, got %s", d)
	}
}

func TestDecomposeComposeRoundTrip(t *testing.T) {
	tests := []string{"0", "123.456", "-123.456", "123456000", "0.123456", "-0.123456"}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			d := MustParse(s)
			form, neg, coef, exp := d.Decompose(nil)
			var got Decimal
			if err := got.Compose(form, neg, coef, exp); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(d) {
				t.Errorf("Compose(Decompose(%s)) = %s, want %s", s, got, d)
			}
		})
	}
}

func TestComposeRejectsNonFiniteForm(t *testing.T) {
	var d Decimal
	if err := d.Compose(1, false, nil, 0); err == nil {
		t.Fatal("expected an error composing a non-finite form")
	}
	if err := d.Compose(2, false, nil, 0); err == nil {
		t.Fatal("expected an error composing a non-finite form")
	}
}

func TestComposePositiveExponent(t *testing.T) {
	var d Decimal
	if err := d.Compose(0, false, []byte{0x01, 0xE2, 0x40}, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.String() != "123456000" {
		t.Errorf("Compose(..., exp=3) = %s, want 123456000", d)
	}
	if d.Precision() != 0 {
		t.Errorf("Compose(..., exp=3).Precision() = %d, want 0", d.Precision())
	}
}

func TestGoString(t *testing.T) {
	d := MustParse("3.14")
	want := `decimalfp.MustParse("3.14")`
	if got := d.GoString(); got != want {
		t.Errorf("GoString() = %s, want %s", got, want)
	}
}
