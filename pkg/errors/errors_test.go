// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/devboot/nvboot/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "unsupported_os",
			code:    errors.ErrUnsupportedOS,
			message: "Windows is not supported",
			wantStr: "[UNSUPPORTED_OS] Windows is not supported",
		},
		{
			name:    "missing_prerequisite",
			code:    errors.ErrPrerequisiteMissing,
			message: "Git is not installed",
			wantStr: "[PREREQUISITE_MISSING] Git is not installed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrCommandFailed, "%s exited with %d", "curl", 22)
	assert.Equal(t, "curl exited with 22", err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrInternal, "internal error")

		assert.Equal(t, errors.ErrInternal, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[INTERNAL] internal error: base error", err.Error())
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrPathEscape, "outside sandbox").
		WithDetail("path", "/etc/passwd").
		WithDetail("root", "./tests")

	assert.Equal(t, "/etc/passwd", err.Details["path"])
	assert.Equal(t, "./tests", err.Details["root"])
	assert.Equal(t, err.Details, errors.GetErrorDetails(err))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrUserDeclined, "error 1")
	err2 := errors.New(errors.ErrUserDeclined, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	assert.True(t, err1.Is(err2))
	assert.False(t, err1.Is(err3))
	assert.True(t, stderrors.Is(err1, err2))
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrCommandFailed, "x"), errors.ErrCommandFailed, true},
		{"different_code", errors.New(errors.ErrCommandFailed, "x"), errors.ErrInternal, false},
		{"wrapped_error", errors.Wrap(stderrors.New("base"), errors.ErrFileAccess, "denied"), errors.ErrFileAccess, true},
		{"plain_error", stderrors.New("standard error"), errors.ErrInternal, false},
		{"nil_error", nil, errors.ErrInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrConfigLoad, errors.GetErrorCode(errors.New(errors.ErrConfigLoad, "x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("standard error")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileAccess, "cannot read file")
	configErr := errors.Wrap(fileErr, errors.ErrConfigLoad, "failed to load config")

	assert.True(t, errors.IsErrorCode(configErr, errors.ErrConfigLoad))
	assert.True(t, stderrors.Is(configErr, rootCause))

	var inner *errors.BootError
	if assert.True(t, stderrors.As(configErr.Unwrap(), &inner)) {
		assert.Equal(t, errors.ErrFileAccess, inner.Code)
	}
}

func TestUserMessage(t *testing.T) {
	err := errors.Wrap(stderrors.New("exit status 1"), errors.ErrPrerequisiteMissing,
		"Node is not installed. Please install node before continuing.")
	assert.Equal(t, "Node is not installed. Please install node before continuing.", errors.UserMessage(err))
	assert.Equal(t, "plain", errors.UserMessage(stderrors.New("plain")))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, errors.ExitCode(nil))
	assert.Equal(t, 1, errors.ExitCode(errors.New(errors.ErrUserDeclined, "no")))
	assert.Equal(t, 1, errors.ExitCode(stderrors.New("boom")))
}
