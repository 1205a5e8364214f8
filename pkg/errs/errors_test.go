package errs

import (
	"errors"
	"testing"
)

func TestArityErrorMessages(t *testing.T) {
	if got, want := TooFewArguments(2, 1).Error(), "ArityError: Too few arguments for function, expected 2 but got 1"; got != want {
		t.Errorf("TooFewArguments = %q, want %q", got, want)
	}
	if got, want := TooManyArguments(2, 3).Error(), "ArityError: Too many arguments for function, expected 2 but got 3"; got != want {
		t.Errorf("TooManyArguments = %q, want %q", got, want)
	}
}

func TestAssertArity(t *testing.T) {
	if err := AssertArity(2, 2); err != nil {
		t.Errorf("AssertArity(2,2) = %v, want nil", err)
	}
	if err := AssertArity(2, 1); err == nil {
		t.Error("AssertArity(2,1) should fail")
	}
	if err := AssertArity(2, 3); err == nil {
		t.Error("AssertArity(2,3) should fail")
	}
}

func TestTypeErrorMessage(t *testing.T) {
	got := NewTypeError("Integer", "String").Error()
	want := "TypeError: expected <Integer> but got <String>"
	if got != want {
		t.Errorf("TypeError.Error() = %q, want %q", got, want)
	}
}

func TestIOErrorUnwrap(t *testing.T) {
	if NewIOError(nil) != nil {
		t.Error("NewIOError(nil) should be nil")
	}
	inner := errors.New("disk full")
	if got := errors.Unwrap(NewIOError(inner)); got != inner {
		t.Errorf("Unwrap(NewIOError(inner)) = %v, want %v", got, inner)
	}
}
