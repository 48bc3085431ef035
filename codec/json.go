/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package codec

import (
	"bytes"
	"encoding/json"
	"sync"
)

// Codec serializes entities of type T to storage payloads and back.
type Codec[T any] interface {
	// Encode renders the entity as a storage payload.
	Encode(v T) ([]byte, error)

	// DecodeLenient parses a stored payload, tolerating unknown fields.
	// Stored documents may carry fields written by newer versions.
	DecodeLenient(data []byte) (*T, error)

	// DecodeStrict parses a stored payload, rejecting unknown fields.
	DecodeStrict(data []byte) (*T, error)
}

// bufferPool recycles encode buffers across calls.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return new(bytes.Buffer)
	},
}

// JSON is a Codec that stores entities as JSON documents.
type JSON[T any] struct{}

// NewJSON returns a JSON codec for type T.
func NewJSON[T any]() JSON[T] {
	return JSON[T]{}
}

// Encode renders the entity as a JSON payload. The scratch buffer is
// returned to the pool on every exit path, including encode failure.
func (JSON[T]) Encode(v T) ([]byte, error) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	enc := json.NewEncoder(buf)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	// Copy out: the buffer's backing array is reused after release.
	payload := make([]byte, buf.Len())
	copy(payload, buf.Bytes())
	return payload, nil
}

// DecodeLenient parses a JSON payload into a new T, ignoring any fields
// the type does not declare.
func (JSON[T]) DecodeLenient(data []byte) (*T, error) {
	result := new(T)
	if err := json.Unmarshal(data, result); err != nil {
		return nil, err
	}
	return result, nil
}

// DecodeStrict parses a JSON payload into a new T, failing on any field
// the type does not declare.
func (JSON[T]) DecodeStrict(data []byte) (*T, error) {
	result := new(T)
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(result); err != nil {
		return nil, err
	}
	return result, nil
}
