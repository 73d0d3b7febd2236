// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/packforge/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "cycle_error",
			code:    errors.ErrCyclicDependency,
			message: "circular dependency detected",
			wantStr: "[CYCLIC_DEPENDENCY] circular dependency detected",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid configuration",
			wantStr: "[INVALID_INPUT] invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrUnresolvedDependency, "dependency %q of pack %q doesn't exist", "ghost", "A")
	if err.Message != `dependency "ghost" of pack "A" doesn't exist` {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrInternal, "internal error")

		if err.Code != errors.ErrInternal {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrInternal)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[INTERNAL] internal error: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrInternal, "internal error")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})

	t.Run("wrapf_formats_message", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrDescriptorRead, "cannot read %s", "install.xml")
		if err.Message != "cannot read install.xml" {
			t.Errorf("Wrapf() message = %q", err.Message)
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrConflictingPreselection, "conflict").
		WithDetail("group", "g1").
		WithDetail("packs", []string{"A", "B"})

	if err.Details["group"] != "g1" {
		t.Errorf("WithDetail() group = %v, want %v", err.Details["group"], "g1")
	}

	if got := err.DetailKeys(); len(got) != 2 || got[0] != "group" || got[1] != "packs" {
		t.Errorf("DetailKeys() = %v, want [group packs]", got)
	}
}

func TestWithDetails(t *testing.T) {
	details := map[string]interface{}{
		"pack":       "A",
		"dependency": "ghost",
	}

	err := errors.New(errors.ErrUnresolvedDependency, "missing").WithDetails(details)

	for k, v := range details {
		if err.Details[k] != v {
			t.Errorf("WithDetails() %s = %v, want %v", k, err.Details[k], v)
		}
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrCyclicDependency, "error 1")
	err2 := errors.New(errors.ErrCyclicDependency, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with PackError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrPackNotFound, "not found"),
			code:     errors.ErrPackNotFound,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrPackNotFound, "not found"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrDescriptorRead, "denied"),
			code:     errors.ErrDescriptorRead,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrPackNotFound,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrPackNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCodeAndDetails(t *testing.T) {
	err := errors.New(errors.ErrDuplicatePack, "duplicate").WithDetail("pack", "A")

	if got := errors.GetErrorCode(err); got != errors.ErrDuplicatePack {
		t.Errorf("GetErrorCode() = %v", got)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v", got)
	}
	if got := errors.GetErrorDetails(err); got["pack"] != "A" {
		t.Errorf("GetErrorDetails() = %v", got)
	}
	if got := errors.GetErrorDetails(stderrors.New("plain")); got != nil {
		t.Errorf("GetErrorDetails(plain) = %v, want nil", got)
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	readErr := errors.Wrap(rootCause, errors.ErrDescriptorRead, "cannot read refpack")
	parseErr := errors.Wrap(readErr, errors.ErrDescriptorInvalid, "failed to flatten packs")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(parseErr, errors.ErrDescriptorInvalid) {
			t.Error("Top level should have ErrDescriptorInvalid code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var packErr *errors.PackError
		if stderrors.As(parseErr.Unwrap(), &packErr) {
			if !errors.IsErrorCode(packErr, errors.ErrDescriptorRead) {
				t.Error("Middle error should have ErrDescriptorRead code")
			}
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(parseErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}
