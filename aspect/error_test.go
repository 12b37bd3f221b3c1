package aspect

import (
	"errors"
	"io"
	"log/slog"
	"testing"
)

func TestError_Wrap_MatchesSentinelAndCause(t *testing.T) {
	err := ErrLoad.Wrap(io.ErrUnexpectedEOF).With(slog.Int("rule", 2))

	if !errors.Is(err, ErrLoad) {
		t.Error("wrapped error does not match its sentinel")
	}

	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("wrapped error does not match its cause")
	}

	if errors.Is(err, ErrDump) {
		t.Error("wrapped error matches an unrelated sentinel")
	}

	if want := "load attachments: unexpected EOF"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestError_With_DoesNotModifyReceiver(t *testing.T) {
	base := NewError("base")
	_ = base.With(slog.String("k", "v"))

	if len(base.attrs) != 0 {
		t.Error("With modified its receiver")
	}
}

func TestWrapError(t *testing.T) {
	inner := ErrInvalidSite.With(slog.String("site", "x"))

	if got := WrapError(inner); got != inner {
		t.Error("WrapError did not return the existing *Error")
	}

	plain := errors.New("plain")
	if got := WrapError(plain); got.Unwrap() != plain || got.Error() != "plain" {
		t.Errorf("WrapError(plain) = %v", got)
	}
}

func TestError_LogValue(t *testing.T) {
	v := ErrRuleCompile.Wrap(errors.New("syntax")).
		With(slog.String("when", "x ==")).
		LogValue()

	attrs := v.Group()
	if len(attrs) != 3 {
		t.Fatalf("LogValue() = %v", attrs)
	}

	if attrs[0].Value.String() != "rule compilation failed" ||
		attrs[1].Value.String() != "syntax" ||
		attrs[2].Key != "when" {
		t.Errorf("LogValue() = %v", attrs)
	}
}
