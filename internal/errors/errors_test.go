package errors

import (
	"errors"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "error without cause",
			err: &AppError{
				Code:    ErrCodeNotFound,
				Message: "room not found",
			},
			want: "room not found",
		},
		{
			name: "error with cause",
			err: &AppError{
				Code:    ErrCodeUnavailable,
				Message: "failed to save message",
				Cause:   errors.New("connection refused"),
			},
			want: "failed to save message: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := &AppError{
		Code:    ErrCodeUnavailable,
		Message: "wrapped error",
		Cause:   cause,
	}

	if unwrapped := err.Unwrap(); !errors.Is(unwrapped, cause) {
		t.Errorf("AppError.Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantCode ErrorCode
	}{
		{"NotFound", NotFound("x"), ErrCodeNotFound},
		{"Conflict", Conflict("x"), ErrCodeConflict},
		{"ValidationField", ValidationField("f", "x"), ErrCodeValidation},
		{"AuthFailed", AuthFailed("x"), ErrCodeAuthFailed},
		{"PermissionDenied", PermissionDenied("x"), ErrCodePermissionDenied},
		{"Unavailable", Unavailable("x"), ErrCodeUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %v, want %v", tt.err.Code, tt.wantCode)
			}
			if tt.err.Message != "x" {
				t.Errorf("Message = %v, want x", tt.err.Message)
			}
		})
	}
}

func TestIsHelpers(t *testing.T) {
	wrapped := Wrap(errors.New("boom"), ErrCodePermissionDenied, "denied for bob")

	if !IsPermissionDenied(wrapped) {
		t.Error("IsPermissionDenied() = false, want true")
	}
	if IsNotFound(wrapped) {
		t.Error("IsNotFound() = true, want false")
	}
	if IsTimeout(errors.New("plain")) {
		t.Error("IsTimeout(plain error) = true, want false")
	}
	if !IsTimeout(Wrap(errors.New("slow"), ErrCodeTimeout, "timed out")) {
		t.Error("IsTimeout() = false, want true")
	}
	if !IsCanceled(Wrap(errors.New("stop"), ErrCodeCanceled, "canceled")) {
		t.Error("IsCanceled() = false, want true")
	}
}

func TestWrap_NilCause(t *testing.T) {
	if got := Wrap(nil, ErrCodeUnavailable, "nothing"); got != nil {
		t.Errorf("Wrap(nil) = %v, want nil", got)
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(Conflict("dup")); got != ErrCodeConflict {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeConflict)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
}
