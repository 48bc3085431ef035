/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package docstore

import (
	"context"

	"github.com/suparena/modelstore/storagemodels"
)

// DocumentStore is the set of primitives the model store consumes from a
// searchable document store.
//
// Implementations must report two failure kinds distinguishably, using
// the sentinels in the errors package: ErrConflict when a create-only
// write collides with an existing document id, and ErrIndexNotFound when
// a search or delete targets an index that does not exist. Every other
// failure may be returned as-is; the provider wraps it.
type DocumentStore interface {
	// CreateOnly writes a new document into index under id. It must fail
	// with ErrConflict if a document with that id already exists, and
	// must never overwrite. The write is durable and searchable before
	// CreateOnly returns.
	CreateOnly(ctx context.Context, index, id string, payload []byte) error

	// SearchLatest searches params.Pattern for documents whose id equals
	// params.DocID, sorted per params, bounded by params.Size. A pattern
	// matching no index returns empty hits or ErrIndexNotFound,
	// whichever the backend natively reports.
	SearchLatest(ctx context.Context, params *storagemodels.SearchParams) ([]storagemodels.Hit, error)

	// DeleteByID deletes every document matching params.DocID across
	// params.Pattern, without aborting on individual version conflicts,
	// and returns the number of documents deleted. Deletions are visible
	// to searches before DeleteByID returns.
	DeleteByID(ctx context.Context, params *storagemodels.DeleteParams) (int64, error)
}
