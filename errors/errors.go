/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when no model configuration matches the requested id
	ErrNotFound = errors.New("model configuration not found")

	// ErrAlreadyExists is returned when storing a model configuration whose id is already taken
	ErrAlreadyExists = errors.New("model configuration already exists")

	// ErrSerialization is returned when a model configuration cannot be encoded for storage
	ErrSerialization = errors.New("failed to serialize model configuration")

	// ErrDeserialization is returned when a stored payload cannot be parsed back into a model configuration
	ErrDeserialization = errors.New("failed to deserialize model configuration")

	// ErrStorageWrite is returned when the document store fails a write or delete
	ErrStorageWrite = errors.New("document store write failed")

	// ErrStorageRead is returned when the document store fails a search
	ErrStorageRead = errors.New("document store read failed")

	// ErrConflict is reported by document store backends on a create-only
	// write whose document id already exists in the target index
	ErrConflict = errors.New("document id conflict")

	// ErrIndexNotFound is reported by document store backends when the
	// target index or pattern resolves to no index at all
	ErrIndexNotFound = errors.New("index not found")
)

// NotFoundError represents an error when a model configuration is not found
type NotFoundError struct {
	ModelID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("model configuration %q not found", e.ModelID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents an error when a model configuration already exists
type AlreadyExistsError struct {
	ModelID string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("model configuration %q already exists", e.ModelID)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// SerializationError represents a failure to encode a model configuration
type SerializationError struct {
	ModelID string
	Cause   error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("failed to serialize model configuration %q: %v", e.ModelID, e.Cause)
}

func (e *SerializationError) Is(target error) bool {
	return target == ErrSerialization
}

func (e *SerializationError) Unwrap() error {
	return e.Cause
}

// DeserializationError represents a failure to parse a stored payload
type DeserializationError struct {
	ModelID string
	Cause   error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("failed to parse stored model configuration %q: %v", e.ModelID, e.Cause)
}

func (e *DeserializationError) Is(target error) bool {
	return target == ErrDeserialization
}

func (e *DeserializationError) Unwrap() error {
	return e.Cause
}

// StorageError represents an unclassified document store failure.
// Read is true for search failures and false for write/delete failures.
type StorageError struct {
	ModelID string
	Read    bool
	Cause   error
}

func (e *StorageError) Error() string {
	op := "write"
	if e.Read {
		op = "read"
	}
	return fmt.Sprintf("document store %s failed for model configuration %q: %v", op, e.ModelID, e.Cause)
}

func (e *StorageError) Is(target error) bool {
	if e.Read {
		return target == ErrStorageRead
	}
	return target == ErrStorageWrite
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(modelID string) error {
	return &NotFoundError{ModelID: modelID}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(modelID string) error {
	return &AlreadyExistsError{ModelID: modelID}
}

// NewSerializationError creates a new SerializationError
func NewSerializationError(modelID string, cause error) error {
	return &SerializationError{ModelID: modelID, Cause: cause}
}

// NewDeserializationError creates a new DeserializationError
func NewDeserializationError(modelID string, cause error) error {
	return &DeserializationError{ModelID: modelID, Cause: cause}
}

// NewStorageWriteError creates a StorageError for a failed write or delete
func NewStorageWriteError(modelID string, cause error) error {
	return &StorageError{ModelID: modelID, Cause: cause}
}

// NewStorageReadError creates a StorageError for a failed search
func NewStorageReadError(modelID string, cause error) error {
	return &StorageError{ModelID: modelID, Read: true, Cause: cause}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsSerialization checks if an error is a serialization error
func IsSerialization(err error) bool {
	return errors.Is(err, ErrSerialization)
}

// IsDeserialization checks if an error is a deserialization error
func IsDeserialization(err error) bool {
	return errors.Is(err, ErrDeserialization)
}

// IsStorageWrite checks if an error is a storage write error
func IsStorageWrite(err error) bool {
	return errors.Is(err, ErrStorageWrite)
}

// IsStorageRead checks if an error is a storage read error
func IsStorageRead(err error) bool {
	return errors.Is(err, ErrStorageRead)
}

// IsConflict checks if an error carries the document store conflict kind
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsIndexNotFound checks if an error carries the index not found kind
func IsIndexNotFound(err error) bool {
	return errors.Is(err, ErrIndexNotFound)
}
