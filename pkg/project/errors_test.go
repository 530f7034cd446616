package project

import (
	"errors"
	"testing"
)

func TestNewError(t *testing.T) {
	err := NewError(ErrCodeUnknownPackage, "package %s not found", "ghost 1")

	if err.Code != ErrCodeUnknownPackage {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeUnknownPackage)
	}
	if err.Message != "package ghost 1 not found" {
		t.Errorf("Message = %v", err.Message)
	}
	expected := "UNKNOWN_PACKAGE: package ghost 1 not found"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrapError(t *testing.T) {
	cause := errors.New("permission denied")
	err := WrapError(ErrCodeSinkWrite, cause, "write descriptor")

	if err.Code != ErrCodeSinkWrite {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeSinkWrite)
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIsCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching code", NewError(ErrCodeMissingSourceRoot, "x"), ErrCodeMissingSourceRoot, true},
		{"different code", NewError(ErrCodeMissingSourceRoot, "x"), ErrCodeDuplicateCrateName, false},
		{"plain error", errors.New("plain"), ErrCodeMissingSourceRoot, false},
		{"nil error", nil, ErrCodeMissingSourceRoot, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCode(tt.err, tt.code); got != tt.want {
				t.Errorf("IsCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(NewError(ErrCodePathResolution, "x")); got != ErrCodePathResolution {
		t.Errorf("GetCode = %v, want %v", got, ErrCodePathResolution)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
}
