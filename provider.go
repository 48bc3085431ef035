/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package modelstore

import (
	"context"
	stderrors "errors"
	"log/slog"

	"github.com/suparena/modelstore/codec"
	"github.com/suparena/modelstore/docstore"
	"github.com/suparena/modelstore/errors"
	"github.com/suparena/modelstore/registry"
	"github.com/suparena/modelstore/storagemodels"
)

// ModelConfigCodec is the name the default JSON codec for ModelConfig is
// registered under.
const ModelConfigCodec = "modelconfig-json"

func init() {
	registry.RegisterCodec(ModelConfigCodec, codec.NewJSON[storagemodels.ModelConfig]())
}

var errNoDescriptor = stderrors.New("no index descriptor registered for entity type")

// Provider persists versioned configuration documents of type T in a
// document store.
//
// Each operation issues exactly one request to the store and completes a
// caller-supplied callback exactly once, with either a value or an error
// from the taxonomy in the errors package. The provider performs no
// retries and no locking of its own: create-only atomicity per id is the
// store's guarantee, and the provider only consumes it.
type Provider[T any] struct {
	store docstore.DocumentStore
	codec codec.Codec[T]
	docID func(T) string
	log   *slog.Logger
}

// NewProvider constructs a provider over the given store and codec.
// docID extracts the document identifier from an entity. A nil logger
// falls back to slog.Default(). The index descriptor for T must be
// registered through the registry package before operations are issued.
func NewProvider[T any](store docstore.DocumentStore, c codec.Codec[T], docID func(T) string, log *slog.Logger) *Provider[T] {
	if log == nil {
		log = slog.Default()
	}
	return &Provider[T]{
		store: store,
		codec: c,
		docID: docID,
		log:   log,
	}
}

// NewModelConfigProvider constructs a Provider for ModelConfig documents
// using the registered JSON codec.
func NewModelConfigProvider(store docstore.DocumentStore, log *slog.Logger) (*Provider[storagemodels.ModelConfig], error) {
	c, err := registry.GetCodec[codec.JSON[storagemodels.ModelConfig]](ModelConfigCodec)
	if err != nil {
		return nil, err
	}
	return NewProvider[storagemodels.ModelConfig](store, c, func(cfg storagemodels.ModelConfig) string {
		return cfg.ModelID
	}, log), nil
}

// Store persists cfg under its document identifier with a create-only
// write to the write index, then invokes done exactly once.
//
// done receives nil on success, AlreadyExistsError if the identifier is
// already taken, SerializationError if cfg could not be encoded (no
// request is sent in that case), and StorageError otherwise.
func (p *Provider[T]) Store(ctx context.Context, cfg T, done func(error)) {
	go func() {
		done(p.storeSync(ctx, cfg))
	}()
}

func (p *Provider[T]) storeSync(ctx context.Context, cfg T) error {
	id := p.docID(cfg)

	desc, ok := registry.GetIndexDescriptor[T]()
	if !ok {
		return errors.NewStorageWriteError(id, errNoDescriptor)
	}

	payload, err := p.codec.Encode(cfg)
	if err != nil {
		p.log.Error("failed to serialize model configuration", "model_id", id, "error", err)
		return errors.NewSerializationError(id, err)
	}

	if err := p.store.CreateOnly(ctx, desc.WriteIndex, id, payload); err != nil {
		p.log.Error("failed to store model configuration", "model_id", id, "error", err)
		if errors.IsConflict(err) {
			return errors.NewAlreadyExistsError(id)
		}
		return errors.NewStorageWriteError(id, err)
	}
	return nil
}

// Get resolves the latest stored version of the document with the given
// identifier, then invokes done exactly once.
//
// When the index pattern matches several generations holding the same
// identifier, the hit from the most recently created index wins. A
// pattern resolving to no index at all is reported as NotFoundError,
// the same as zero hits.
func (p *Provider[T]) Get(ctx context.Context, modelID string, done func(*T, error)) {
	go func() {
		done(p.getSync(ctx, modelID))
	}()
}

func (p *Provider[T]) getSync(ctx context.Context, modelID string) (*T, error) {
	desc, ok := registry.GetIndexDescriptor[T]()
	if !ok {
		return nil, errors.NewStorageReadError(modelID, errNoDescriptor)
	}

	hits, err := p.store.SearchLatest(ctx, &storagemodels.SearchParams{
		Pattern:       desc.Pattern,
		DocID:         modelID,
		Size:          1,
		SortIndexDesc: true,
	})
	if err != nil {
		if errors.IsIndexNotFound(err) {
			return nil, errors.NewNotFoundError(modelID)
		}
		return nil, errors.NewStorageReadError(modelID, err)
	}
	if len(hits) == 0 {
		return nil, errors.NewNotFoundError(modelID)
	}

	cfg, err := p.codec.DecodeLenient(hits[0].Source)
	if err != nil {
		p.log.Error("failed to parse model configuration", "model_id", modelID, "index", hits[0].Index, "error", err)
		return nil, errors.NewDeserializationError(modelID, err)
	}
	return cfg, nil
}

// Delete removes every stored version of the document with the given
// identifier across the index pattern, then invokes done exactly once.
//
// done receives NotFoundError when nothing matched, which is
// indistinguishable from "already deleted".
func (p *Provider[T]) Delete(ctx context.Context, modelID string, done func(error)) {
	go func() {
		done(p.deleteSync(ctx, modelID))
	}()
}

func (p *Provider[T]) deleteSync(ctx context.Context, modelID string) error {
	desc, ok := registry.GetIndexDescriptor[T]()
	if !ok {
		return errors.NewStorageWriteError(modelID, errNoDescriptor)
	}

	deleted, err := p.store.DeleteByID(ctx, &storagemodels.DeleteParams{
		Pattern: desc.Pattern,
		DocID:   modelID,
	})
	if err != nil {
		if errors.IsIndexNotFound(err) {
			return errors.NewNotFoundError(modelID)
		}
		p.log.Error("failed to delete model configuration", "model_id", modelID, "error", err)
		return errors.NewStorageWriteError(modelID, err)
	}
	if deleted == 0 {
		return errors.NewNotFoundError(modelID)
	}
	return nil
}
