package vaxin

import (
	"reflect"
	"regexp"
	"testing"
)

func TestValidate_StandardPredicates(t *testing.T) {
	tests := []struct {
		name      string
		validator Validator
		value     any
		wantOK    bool
		wantMsg   string
	}{
		{"string accepts string", IsString, "hello", true, ""},
		{"string rejects int", IsString, 1, false, "must be a string"},
		{"integer accepts int", IsInteger, 42, true, ""},
		{"integer accepts int64", IsInteger, int64(42), true, ""},
		{"integer accepts uint8", IsInteger, uint8(7), true, ""},
		{"integer rejects float", IsInteger, 1.5, false, "must be an integer"},
		{"integer rejects numeric string", IsInteger, "42", false, "must be an integer"},
		{"boolean accepts bool", IsBoolean, true, true, ""},
		{"boolean rejects string", IsBoolean, "true", false, "must be a boolean"},
		{"float accepts float64", IsFloat, 1.5, true, ""},
		{"float accepts float32", IsFloat, float32(1.5), true, ""},
		{"float rejects int", IsFloat, 1, false, "must be a float"},
		{"number accepts int", IsNumber, 1, true, ""},
		{"number accepts float", IsNumber, 1.5, true, ""},
		{"number rejects string", IsNumber, "1", false, "must be a number"},
		{"map accepts map", IsMap, map[string]any{}, true, ""},
		{"map accepts typed map", IsMap, map[string]int{"a": 1}, true, ""},
		{"map rejects slice", IsMap, []any{}, false, "must be a map"},
		{"map rejects nil", IsMap, nil, false, "must be a map"},
		{"slice accepts slice", IsSlice, []any{1, 2}, true, ""},
		{"slice accepts typed slice", IsSlice, []int{1}, true, ""},
		{"slice accepts array", IsSlice, [2]int{1, 2}, true, ""},
		{"slice rejects map", IsSlice, map[string]any{}, false, "must be a list"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conformed, err := Validate(tt.validator, tt.value)
			if tt.wantOK {
				if err != nil {
					t.Fatalf("expected success, got error: %v", err)
				}
				if !reflect.DeepEqual(conformed, tt.value) {
					t.Errorf("conformed = %v, want input %v unchanged", conformed, tt.value)
				}
				return
			}
			if err == nil {
				t.Fatal("expected failure, got success")
			}
			if got := err.Error(); got != tt.wantMsg {
				t.Errorf("message = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestPredicate_Adapter(t *testing.T) {
	even := Predicate(func(value any) bool {
		n, ok := value.(int)
		return ok && n%2 == 0
	})

	conformed, err := Validate(even, 4)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if conformed != 4 {
		t.Errorf("conformed = %v, want 4", conformed)
	}

	_, err = Validate(even, 3)
	if err == nil {
		t.Fatal("expected failure for odd input")
	}
	if err.Error() != "is invalid" {
		t.Errorf("message = %q, want %q", err.Error(), "is invalid")
	}
	if err.Validator != "predicate" {
		t.Errorf("identity = %q, want %q", err.Validator, "predicate")
	}
	if err.Meta["kind"] != "predicate" {
		t.Errorf("kind = %v, want %q", err.Meta["kind"], "predicate")
	}
}

func TestCombine_SequencesConformedValues(t *testing.T) {
	double := Transform(nil, func(value any) any { return value.(int) * 2 })
	addOne := Transform(nil, func(value any) any { return value.(int) + 1 })

	conformed, err := Validate(Combine(double, addOne), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conformed != 21 {
		t.Errorf("conformed = %v, want 21 (double then add one)", conformed)
	}
}

func TestCombine_ShortCircuitsOnFailure(t *testing.T) {
	secondRan := false
	spy := func(value any) Result {
		secondRan = true
		return Valid(value)
	}

	_, err := Validate(Combine(IsString, spy), 1)
	if err == nil {
		t.Fatal("expected failure from first validator")
	}
	if secondRan {
		t.Error("second validator ran after first failed")
	}
	if err.Error() != "must be a string" {
		t.Errorf("failure propagated as %q, want untouched %q", err.Error(), "must be a string")
	}
}

func TestCombine_NoopIsIdentity(t *testing.T) {
	inputs := []any{1, "a", nil, []any{1}, map[string]any{"k": "v"}}

	for _, input := range inputs {
		left, leftErr := Validate(Combine(Noop(), IsString), input)
		right, rightErr := Validate(Combine(IsString, Noop()), input)
		plain, plainErr := Validate(IsString, input)

		if (leftErr == nil) != (plainErr == nil) || (rightErr == nil) != (plainErr == nil) {
			t.Errorf("input %v: Noop composition changed outcome", input)
			continue
		}
		if plainErr == nil && (!reflect.DeepEqual(left, plain) || !reflect.DeepEqual(right, plain)) {
			t.Errorf("input %v: Noop composition changed conformed value", input)
		}
		if plainErr != nil && (leftErr.Error() != plainErr.Error() || rightErr.Error() != plainErr.Error()) {
			t.Errorf("input %v: Noop composition changed error", input)
		}
	}
}

func TestAllOf_SingleBehavesLikeValidator(t *testing.T) {
	single := AllOf(IsInteger)

	if _, err := Validate(single, 5); err != nil {
		t.Errorf("AllOf(IsInteger) rejected 5: %v", err)
	}
	_, err := Validate(single, "5")
	if err == nil || err.Error() != "must be an integer" {
		t.Errorf("AllOf(IsInteger) on %q: err = %v, want %q", "5", err, "must be an integer")
	}
}

func TestAllOf_LeftToRightFirstFailureWins(t *testing.T) {
	v := AllOf(
		IsString,
		StringLength(StringLengthOptions{Min: Some(3)}),
		Format(regexp.MustCompile(`^[a-z]+$`), FormatOptions{}),
	)

	_, err := Validate(v, "ab")
	if err == nil {
		t.Fatal("expected length failure")
	}
	if err.Validator != "string_length" {
		t.Errorf("failing identity = %q, want string_length (first failure in order)", err.Validator)
	}
}

func TestAllOf_EmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for empty AllOf")
		}
	}()
	AllOf()
}

func TestTransform_AppliesMapperAfterValidator(t *testing.T) {
	upper := Transform(IsString, func(value any) any {
		return "!" + value.(string)
	})

	conformed, err := Validate(upper, "hey")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conformed != "!hey" {
		t.Errorf("conformed = %v, want %q", conformed, "!hey")
	}

	// The mapper never runs when the validator fails.
	if _, err := Validate(upper, 1); err == nil || err.Error() != "must be a string" {
		t.Errorf("err = %v, want %q", err, "must be a string")
	}
}

func TestValidate_Idempotent(t *testing.T) {
	v := NewSchema().
		Required("id", Number(NumberOptions{Checks: []NumberCheck{GreaterThan(0)}})).
		Default("name", IsString, "anonymous").
		Validator()
	input := map[string]any{"id": 7}

	first, firstErr := Validate(v, input)
	second, secondErr := Validate(v, input)

	if (firstErr == nil) != (secondErr == nil) {
		t.Fatalf("outcomes differ between runs: %v vs %v", firstErr, secondErr)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("conformed values differ between runs: %v vs %v", first, second)
	}

	bad := map[string]any{"id": -1}
	e1, e2 := mustFail(t, v, bad), mustFail(t, v, bad)
	if e1.Error() != e2.Error() {
		t.Errorf("errors differ between runs: %q vs %q", e1.Error(), e2.Error())
	}
}

func TestInvalidf_CustomValidator(t *testing.T) {
	prime := func(value any) Result {
		n, ok := value.(int)
		if !ok {
			return IsInteger(value)
		}
		if n == 2 || n == 3 || n == 5 || n == 7 {
			return Valid(n)
		}
		return Invalidf("must be a prime below %d", 10)
	}

	if _, err := Validate(prime, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := Validate(prime, 4)
	if err == nil {
		t.Fatal("expected failure")
	}
	if err.Error() != "must be a prime below 10" {
		t.Errorf("message = %q", err.Error())
	}
	if err.Validator != "custom" {
		t.Errorf("identity = %q, want custom", err.Validator)
	}
}

// mustFail validates and requires an error.
func mustFail(t *testing.T, v Validator, value any) *Error {
	t.Helper()
	_, err := Validate(v, value)
	if err == nil {
		t.Fatalf("expected validation of %v to fail", value)
	}
	return err
}
