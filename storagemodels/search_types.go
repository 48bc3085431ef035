/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import "encoding/json"

// IndexDescriptor names where documents of one entity type live.
//
// WriteIndex is the single canonical index new documents are created in.
// Pattern matches the write index plus zero or more older generations that
// may still hold prior versions of a document after an index rollover.
type IndexDescriptor struct {
	WriteIndex string
	Pattern    string
}

// SearchParams defines parameters for an identifier-scoped search across
// an index pattern.
type SearchParams struct {
	// Pattern is the index pattern to search.
	Pattern string
	// DocID is the document identifier to match exactly.
	DocID string
	// Size bounds the number of hits returned.
	Size int
	// SortIndexDesc orders hits by index name descending, so the first
	// hit belongs to the most recently created matching index.
	SortIndexDesc bool
}

// Hit is a single search result.
type Hit struct {
	// Index is the concrete index the document was found in.
	Index string
	// DocID is the document identifier.
	DocID string
	// Source is the stored payload.
	Source json.RawMessage
}

// DeleteParams defines parameters for a delete-by-query across an index
// pattern.
type DeleteParams struct {
	// Pattern is the index pattern to delete from.
	Pattern string
	// DocID is the document identifier to match exactly.
	DocID string
}
