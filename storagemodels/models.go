/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"encoding/json"

	"github.com/go-openapi/strfmt"
)

// ModelConfig is a versioned model configuration document.
//
// ModelID is the document identifier and must be unique within the write
// index. Everything else is payload: the store never inspects it, and the
// Definition body in particular is carried as raw JSON so that definition
// formats can evolve without touching the persistence layer.
type ModelConfig struct {

	// Unique identifier of the model.
	// Required: true
	ModelID string `json:"model_id"`

	// A human readable description of the model.
	Description string `json:"description,omitempty"`

	// Version of the configuration document format.
	Version string `json:"version,omitempty"`

	// Principal that created the model.
	CreatedBy string `json:"created_by,omitempty"`

	// Timestamp when the configuration was created.
	// Format: date-time
	CreateTime *strfmt.DateTime `json:"create_time,omitempty"`

	// Free-form labels attached to the model.
	Tags []string `json:"tags,omitempty"`

	// Arbitrary metadata attached by the caller.
	Metadata map[string]interface{} `json:"metadata,omitempty"`

	// Opaque model definition body.
	Definition json.RawMessage `json:"definition,omitempty"`
}
