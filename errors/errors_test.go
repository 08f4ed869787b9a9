package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestGetAppErrorUnwrapsChain(t *testing.T) {
	appErr := NewNotFoundError(ErrCodeGuestNotFound, "guest not found")
	wrapped := fmt.Errorf("load detail: %w", appErr)

	got := GetAppError(wrapped)
	if got != appErr {
		t.Fatalf("expected the original AppError, got %v", got)
	}
	if !IsNotFound(wrapped) {
		t.Fatalf("expected IsNotFound to be true")
	}
	if IsAppError(errors.New("plain")) {
		t.Fatalf("plain error must not be an AppError")
	}
}

func TestAppErrorMessage(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewAppError(ErrCodeDBError, "query failed", cause)
	if err.Error() != "[DB_ERROR] query failed: connection refused" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected errors.Is to reach the cause")
	}
}

func TestInvalidStateKeepsCause(t *testing.T) {
	cause := errors.New("only a checked-in reservation may check out")
	err := NewInvalidStateError(cause)
	if err.Message != cause.Error() || !HasCode(err, ErrCodeInvalidState) {
		t.Fatalf("unexpected error %+v", err)
	}
	if IsNotFound(err) {
		t.Fatalf("invalid state must not be reported as not found")
	}
}
