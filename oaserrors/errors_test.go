package oaserrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &ParseError{
			Path:    "/path/to/file.yaml",
			Line:    42,
			Column:  10,
			Message: "invalid syntax",
			Cause:   cause,
		}

		msg := err.Error()
		if msg != "parse error in /path/to/file.yaml at line 42, column 10: invalid syntax: underlying error" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ParseError{}
		if err.Error() != "parse error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with line only", func(t *testing.T) {
		err := &ParseError{Line: 10}
		if err.Error() != "parse error at line 10" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrParse only", func(t *testing.T) {
		err := &ParseError{Message: "test"}
		if !errors.Is(err, ErrParse) {
			t.Error("ParseError should match ErrParse")
		}
		if errors.Is(err, ErrValidation) {
			t.Error("ParseError should not match ErrValidation")
		}
	})

	t.Run("As extracts ParseError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &ParseError{Path: "test.yaml", Line: 5})
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatal("errors.As should succeed")
		}
		if parseErr.Line != 5 {
			t.Errorf("unexpected line: %d", parseErr.Line)
		}
	})
}

func TestReferenceError(t *testing.T) {
	t.Run("plain reference error", func(t *testing.T) {
		err := &ReferenceError{Ref: "#/definitions/Pet", Message: "not found"}
		if err.Error() != "reference error: #/definitions/Pet: not found" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
		if !errors.Is(err, ErrReference) {
			t.Error("ReferenceError should match ErrReference")
		}
		if errors.Is(err, ErrCircularReference) {
			t.Error("non-circular ReferenceError should not match ErrCircularReference")
		}
	})

	t.Run("circular reference error", func(t *testing.T) {
		err := &ReferenceError{Ref: "#/components/schemas/A", IsCircular: true}
		if err.Error() != "circular reference: #/components/schemas/A" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
		if !errors.Is(err, ErrCircularReference) {
			t.Error("circular ReferenceError should match ErrCircularReference")
		}
	})
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Property: "info", Line: 3, Message: "missing required field \"title\""}
	if err.Error() != "validation error in \"info\" (line 3): missing required field \"title\"" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("ValidationError should match ErrValidation")
	}
}

func TestCheckError(t *testing.T) {
	cause := errors.New("boom")
	err := &CheckError{Rule: "DefaultResponse", Path: "api.yaml", Panicked: true, Cause: cause}
	if err.Error() != "check error in DefaultResponse on api.yaml (panic): boom" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(err, ErrCheck) {
		t.Error("CheckError should match ErrCheck")
	}
	if !errors.Is(err, cause) {
		t.Error("CheckError should unwrap to its cause")
	}

	err = &CheckError{Rule: "DefaultResponse", Pointer: "/paths/~1pets/get/responses", Cause: cause}
	if err.Error() != "check error in DefaultResponse at /paths/~1pets/get/responses: boom" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
}

func TestResourceLimitError(t *testing.T) {
	err := &ResourceLimitError{ResourceType: "nesting_depth", Limit: 10, Actual: 11}
	if err.Error() != "resource limit exceeded: nesting_depth (limit: 10, actual: 11)" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(err, ErrResourceLimit) {
		t.Error("ResourceLimitError should match ErrResourceLimit")
	}
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Option: "rules", Value: "Foo", Message: "unknown rule"}
	if err.Error() != "configuration error for rules (value: Foo): unknown rule" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigError should match ErrConfig")
	}
}

func TestSentinelErrors(t *testing.T) {
	// Verify all sentinel errors are distinct
	sentinels := []error{
		ErrParse,
		ErrReference,
		ErrCircularReference,
		ErrValidation,
		ErrCheck,
		ErrResourceLimit,
		ErrConfig,
	}

	for i, s1 := range sentinels {
		for j, s2 := range sentinels {
			if i != j && errors.Is(s1, s2) {
				t.Errorf("sentinel errors should be distinct: %v should not match %v", s1, s2)
			}
		}
	}
}
