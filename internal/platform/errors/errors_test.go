package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := New(CodeDieUnknown, "unknown die")
	if !stderrors.Is(err, &Error{Code: CodeDieUnknown}) {
		t.Fatal("expected errors.Is to match on code")
	}
	if stderrors.Is(err, &Error{Code: CodePoolEmpty}) {
		t.Fatal("expected errors.Is to reject a different code")
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Wrap(CodeUnknown, "wrapped", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
	if err.Error() != "wrapped" {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{name: "domain", err: New(CodeSeedOutOfRange, "seed"), want: CodeSeedOutOfRange},
		{name: "wrapped", err: fmt.Errorf("ctx: %w", New(CodePoolEmpty, "empty")), want: CodePoolEmpty},
		{name: "plain", err: fmt.Errorf("plain"), want: CodeUnknown},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CodeOf(tc.err); got != tc.want {
				t.Fatalf("CodeOf() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLocalized(t *testing.T) {
	err := WithMetadata(CodeFaceOutOfRange, "face 12 on boost", map[string]string{
		"face": "12",
		"die":  "boost",
	})
	if got := err.Localized("en-US"); got != "Face 12 does not exist on the boost die." {
		t.Fatalf("Localized(en-US) = %q", got)
	}
	if got := err.Localized("pt-BR"); got == err.Localized("en-US") {
		t.Fatalf("expected pt-BR message to differ, got %q", got)
	}
}

func TestUserMessageFallsBackToUnknown(t *testing.T) {
	if got := UserMessage(fmt.Errorf("plain"), "en-US"); got != "Something went wrong." {
		t.Fatalf("UserMessage() = %q", got)
	}
}

func TestInvalidInput(t *testing.T) {
	if !CodeDieUnknown.InvalidInput() {
		t.Fatal("DIE_UNKNOWN should be invalid input")
	}
	if CodeUnknown.InvalidInput() {
		t.Fatal("UNKNOWN should not be invalid input")
	}
}

func TestInputCodesHaveMessages(t *testing.T) {
	codes := []Code{
		CodeDieUnknown,
		CodeFaceOutOfRange,
		CodePoolEmpty,
		CodeNumericKindUnknown,
		CodeNumericCountRange,
		CodeSeedOutOfRange,
		CodeSeedInvalid,
	}
	for _, locale := range []string{"en-US", "pt-BR"} {
		for _, code := range codes {
			if !code.InvalidInput() {
				t.Errorf("%s should be invalid input", code)
			}
			if got := New(code, "x").Localized(locale); got == string(code) || got == "" {
				t.Errorf("%s has no %s message", code, locale)
			}
		}
	}
}
