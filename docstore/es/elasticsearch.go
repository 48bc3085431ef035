/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	elasticsearch "github.com/elastic/go-elasticsearch/v8"

	"github.com/suparena/modelstore/errors"
	"github.com/suparena/modelstore/storagemodels"
)

// DocumentStore implements docstore.DocumentStore against an
// Elasticsearch cluster.
type DocumentStore struct {
	client *elasticsearch.Client
}

// New constructs a DocumentStore from the given configuration.
func New(cfg *Config) (*DocumentStore, error) {
	esCfg := elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
	}
	if cfg.Transport != nil {
		esCfg.Transport = cfg.Transport
	}

	client, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}
	return &DocumentStore{client: client}, nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client *elasticsearch.Client) *DocumentStore {
	return &DocumentStore{client: client}
}

// errorEnvelope is the error body Elasticsearch returns on failed
// requests.
type errorEnvelope struct {
	Error struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	} `json:"error"`
	Status int `json:"status"`
}

// searchEnvelope is the subset of a search response the store consumes.
type searchEnvelope struct {
	Hits struct {
		Hits []struct {
			Index  string          `json:"_index"`
			ID     string          `json:"_id"`
			Source json.RawMessage `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// deleteEnvelope is the subset of a delete-by-query response the store
// consumes.
type deleteEnvelope struct {
	Deleted int64 `json:"deleted"`
}

// CreateOnly indexes a new document with op_type create and immediate
// refresh, so the write is searchable before the call returns. A
// duplicate id reports errors.ErrConflict.
func (s *DocumentStore) CreateOnly(ctx context.Context, index, id string, payload []byte) error {
	res, err := s.client.Create(index, id, bytes.NewReader(payload),
		s.client.Create.WithContext(ctx),
		s.client.Create.WithRefresh("true"),
	)
	if err != nil {
		return fmt.Errorf("create request failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		env := decodeError(res.Body)
		if res.StatusCode == http.StatusConflict || env.Error.Type == "version_conflict_engine_exception" {
			return fmt.Errorf("document %q in index %q: %w", id, index, errors.ErrConflict)
		}
		return fmt.Errorf("create of %q in index %q failed: %s", id, index, env.reason(res.StatusCode))
	}
	return nil
}

// SearchLatest runs a constant-score ids query over the pattern. With
// SortIndexDesc set, hits are ordered by index name descending so the
// first hit comes from the most recently created index generation.
// A pattern whose sole concrete index is missing reports
// errors.ErrIndexNotFound; a wildcard pattern matching nothing returns
// zero hits, as the cluster does.
func (s *DocumentStore) SearchLatest(ctx context.Context, params *storagemodels.SearchParams) ([]storagemodels.Hit, error) {
	body := map[string]interface{}{
		"query": map[string]interface{}{
			"constant_score": map[string]interface{}{
				"filter": map[string]interface{}{
					"ids": map[string]interface{}{
						"values": []string{params.DocID},
					},
				},
			},
		},
	}
	if params.Size > 0 {
		body["size"] = params.Size
	}
	if params.SortIndexDesc {
		body["sort"] = []interface{}{
			map[string]interface{}{"_index": map[string]interface{}{"order": "desc"}},
		}
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, fmt.Errorf("failed to encode search body: %w", err)
	}

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(params.Pattern),
		s.client.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		env := decodeError(res.Body)
		if env.Error.Type == "index_not_found_exception" {
			return nil, fmt.Errorf("pattern %q: %w", params.Pattern, errors.ErrIndexNotFound)
		}
		return nil, fmt.Errorf("search of %q failed: %s", params.Pattern, env.reason(res.StatusCode))
	}

	var envelope searchEnvelope
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	hits := make([]storagemodels.Hit, 0, len(envelope.Hits.Hits))
	for _, h := range envelope.Hits.Hits {
		hits = append(hits, storagemodels.Hit{
			Index:  h.Index,
			DocID:  h.ID,
			Source: h.Source,
		})
	}
	return hits, nil
}

// DeleteByID issues a delete-by-query over the pattern matching the
// document id exactly, proceeding past individual version conflicts and
// refreshing affected indices before returning.
func (s *DocumentStore) DeleteByID(ctx context.Context, params *storagemodels.DeleteParams) (int64, error) {
	body := map[string]interface{}{
		"query": map[string]interface{}{
			"ids": map[string]interface{}{
				"values": []string{params.DocID},
			},
		},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, fmt.Errorf("failed to encode delete body: %w", err)
	}

	res, err := s.client.DeleteByQuery([]string{params.Pattern}, &buf,
		s.client.DeleteByQuery.WithContext(ctx),
		s.client.DeleteByQuery.WithConflicts("proceed"),
		s.client.DeleteByQuery.WithRefresh(true),
	)
	if err != nil {
		return 0, fmt.Errorf("delete by query request failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		env := decodeError(res.Body)
		if env.Error.Type == "index_not_found_exception" {
			return 0, fmt.Errorf("pattern %q: %w", params.Pattern, errors.ErrIndexNotFound)
		}
		return 0, fmt.Errorf("delete by query on %q failed: %s", params.Pattern, env.reason(res.StatusCode))
	}

	var envelope deleteEnvelope
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return 0, fmt.Errorf("failed to decode delete response: %w", err)
	}
	return envelope.Deleted, nil
}

// decodeError reads an error envelope, tolerating bodies that are not
// the standard error shape.
func decodeError(r io.Reader) errorEnvelope {
	var env errorEnvelope
	_ = json.NewDecoder(r).Decode(&env)
	return env
}

func (e errorEnvelope) reason(statusCode int) string {
	if e.Error.Type == "" && e.Error.Reason == "" {
		return fmt.Sprintf("status %d", statusCode)
	}
	return fmt.Sprintf("%s: %s", e.Error.Type, e.Error.Reason)
}
