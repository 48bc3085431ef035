/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("flight-delay-regressor")

	expected := `model configuration "flight-delay-regressor" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestAlreadyExistsError(t *testing.T) {
	err := NewAlreadyExistsError("fraud-classifier-v2")

	expected := `model configuration "fraud-classifier-v2" already exists`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrAlreadyExists) {
		t.Error("AlreadyExistsError should match ErrAlreadyExists")
	}

	if !IsAlreadyExists(err) {
		t.Error("IsAlreadyExists should return true for AlreadyExistsError")
	}
}

func TestSerializationError(t *testing.T) {
	cause := errors.New("unsupported value")
	err := NewSerializationError("m1", cause)

	if !errors.Is(err, ErrSerialization) {
		t.Error("SerializationError should match ErrSerialization")
	}

	if !errors.Is(err, cause) {
		t.Error("SerializationError should unwrap to its cause")
	}

	if !IsSerialization(err) {
		t.Error("IsSerialization should return true for SerializationError")
	}
}

func TestDeserializationError(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := NewDeserializationError("m1", cause)

	if !errors.Is(err, ErrDeserialization) {
		t.Error("DeserializationError should match ErrDeserialization")
	}

	if !errors.Is(err, cause) {
		t.Error("DeserializationError should unwrap to its cause")
	}

	if IsStorageRead(err) {
		t.Error("DeserializationError should not match ErrStorageRead")
	}
}

func TestStorageError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		other    error
	}{
		{
			name:     "write",
			err:      NewStorageWriteError("m1", errors.New("connection reset")),
			sentinel: ErrStorageWrite,
			other:    ErrStorageRead,
		},
		{
			name:     "read",
			err:      NewStorageReadError("m1", errors.New("search rejected")),
			sentinel: ErrStorageRead,
			other:    ErrStorageWrite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("StorageError should match %v", tt.sentinel)
			}
			if errors.Is(tt.err, tt.other) {
				t.Errorf("StorageError should not match %v", tt.other)
			}
		})
	}
}

func TestStorageErrorCause(t *testing.T) {
	// A conflict reported by a backend must stay recognizable through a
	// StorageError wrapper chain.
	cause := fmt.Errorf("create failed: %w", ErrConflict)
	err := NewStorageWriteError("m1", cause)

	if !IsConflict(err) {
		t.Error("IsConflict should see through StorageError wrapping")
	}
}

func TestErrorWrapping(t *testing.T) {
	original := NewNotFoundError("m1")
	wrapped := fmt.Errorf("get operation failed: %w", original)

	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("Wrapped NotFoundError should still match ErrNotFound")
	}

	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should work with wrapped errors")
	}
}

func TestSentinelErrors(t *testing.T) {
	// Ensure sentinel errors are distinct
	sentinels := []error{
		ErrNotFound,
		ErrAlreadyExists,
		ErrSerialization,
		ErrDeserialization,
		ErrStorageWrite,
		ErrStorageRead,
		ErrConflict,
		ErrIndexNotFound,
	}

	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v matches %v", err1, err2)
			}
		}
	}
}
