/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package es

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/suparena/modelstore/errors"
	"github.com/suparena/modelstore/storagemodels"
)

// fakeTransport serves canned responses and records the last request.
type fakeTransport struct {
	lastRequest *http.Request
	lastBody    []byte
	respond     func(*http.Request) *http.Response
}

func (f *fakeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	f.lastRequest = req
	if req.Body != nil {
		f.lastBody, _ = io.ReadAll(req.Body)
		req.Body.Close()
	}
	return f.respond(req), nil
}

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header: http.Header{
			"X-Elastic-Product": []string{"Elasticsearch"},
			"Content-Type":      []string{"application/json"},
		},
		Body: io.NopCloser(strings.NewReader(body)),
	}
}

func newTestStore(t *testing.T, ft *fakeTransport) *DocumentStore {
	t.Helper()
	store, err := New(&Config{
		Addresses: []string{"http://localhost:9200"},
		Transport: ft,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return store
}

func TestCreateOnlySuccess(t *testing.T) {
	ft := &fakeTransport{respond: func(*http.Request) *http.Response {
		return response(http.StatusCreated, `{"result":"created"}`)
	}}
	store := newTestStore(t, ft)

	err := store.CreateOnly(context.Background(), "model-configs-000001", "m1", []byte(`{"model_id":"m1"}`))
	if err != nil {
		t.Fatalf("CreateOnly failed: %v", err)
	}

	if got := ft.lastRequest.URL.Path; got != "/model-configs-000001/_create/m1" {
		t.Errorf("Expected _create path, got %q", got)
	}
	if got := ft.lastRequest.URL.Query().Get("refresh"); got != "true" {
		t.Errorf("Expected refresh=true, got %q", got)
	}
}

func TestCreateOnlyConflict(t *testing.T) {
	ft := &fakeTransport{respond: func(*http.Request) *http.Response {
		return response(http.StatusConflict,
			`{"error":{"type":"version_conflict_engine_exception","reason":"[m1]: version conflict, document already exists"},"status":409}`)
	}}
	store := newTestStore(t, ft)

	err := store.CreateOnly(context.Background(), "model-configs-000001", "m1", []byte(`{}`))
	if !errors.IsConflict(err) {
		t.Errorf("Expected conflict, got %v", err)
	}
}

func TestCreateOnlyOtherFailure(t *testing.T) {
	ft := &fakeTransport{respond: func(*http.Request) *http.Response {
		return response(http.StatusInternalServerError,
			`{"error":{"type":"mapper_parsing_exception","reason":"failed to parse"},"status":500}`)
	}}
	store := newTestStore(t, ft)

	err := store.CreateOnly(context.Background(), "model-configs-000001", "m1", []byte(`{}`))
	if err == nil {
		t.Fatal("Expected error")
	}
	if errors.IsConflict(err) {
		t.Error("A non-conflict failure must not report conflict")
	}
}

func TestSearchLatestParsesHits(t *testing.T) {
	ft := &fakeTransport{respond: func(*http.Request) *http.Response {
		return response(http.StatusOK,
			`{"hits":{"hits":[{"_index":"model-configs-000002","_id":"m1","_source":{"model_id":"m1","version":"2"}}]}}`)
	}}
	store := newTestStore(t, ft)

	hits, err := store.SearchLatest(context.Background(), &storagemodels.SearchParams{
		Pattern:       "model-configs-*",
		DocID:         "m1",
		Size:          1,
		SortIndexDesc: true,
	})
	if err != nil {
		t.Fatalf("SearchLatest failed: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("Expected 1 hit, got %d", len(hits))
	}
	if hits[0].Index != "model-configs-000002" {
		t.Errorf("Expected index from hit, got %q", hits[0].Index)
	}
	if hits[0].DocID != "m1" {
		t.Errorf("Expected doc id m1, got %q", hits[0].DocID)
	}
	if !strings.Contains(string(hits[0].Source), `"version":"2"`) {
		t.Errorf("Expected source payload, got %s", hits[0].Source)
	}

	// The request must carry the ids filter, descending index sort and
	// the size bound.
	var body map[string]interface{}
	if err := json.Unmarshal(ft.lastBody, &body); err != nil {
		t.Fatalf("Failed to parse request body: %v", err)
	}
	if _, ok := body["sort"]; !ok {
		t.Error("Expected sort clause in search body")
	}
	if size, ok := body["size"].(float64); !ok || size != 1 {
		t.Errorf("Expected size 1, got %v", body["size"])
	}
	if !strings.Contains(string(ft.lastBody), `"constant_score"`) {
		t.Error("Expected constant_score query in search body")
	}
	if ft.lastRequest.URL.Path != "/model-configs-%2A/_search" && ft.lastRequest.URL.Path != "/model-configs-*/_search" {
		t.Errorf("Expected search against pattern, got %q", ft.lastRequest.URL.Path)
	}
}

func TestSearchLatestZeroHits(t *testing.T) {
	ft := &fakeTransport{respond: func(*http.Request) *http.Response {
		return response(http.StatusOK, `{"hits":{"hits":[]}}`)
	}}
	store := newTestStore(t, ft)

	hits, err := store.SearchLatest(context.Background(), &storagemodels.SearchParams{
		Pattern: "model-configs-*",
		DocID:   "m1",
		Size:    1,
	})
	if err != nil {
		t.Fatalf("SearchLatest failed: %v", err)
	}
	if len(hits) != 0 {
		t.Errorf("Expected zero hits, got %d", len(hits))
	}
}

func TestSearchLatestIndexNotFound(t *testing.T) {
	ft := &fakeTransport{respond: func(*http.Request) *http.Response {
		return response(http.StatusNotFound,
			`{"error":{"type":"index_not_found_exception","reason":"no such index [model-configs]"},"status":404}`)
	}}
	store := newTestStore(t, ft)

	_, err := store.SearchLatest(context.Background(), &storagemodels.SearchParams{
		Pattern: "model-configs",
		DocID:   "m1",
	})
	if !errors.IsIndexNotFound(err) {
		t.Errorf("Expected index not found, got %v", err)
	}
}

func TestDeleteByIDCountsDeletions(t *testing.T) {
	ft := &fakeTransport{respond: func(*http.Request) *http.Response {
		return response(http.StatusOK, `{"took":12,"deleted":2,"version_conflicts":0}`)
	}}
	store := newTestStore(t, ft)

	deleted, err := store.DeleteByID(context.Background(), &storagemodels.DeleteParams{
		Pattern: "model-configs-*",
		DocID:   "m1",
	})
	if err != nil {
		t.Fatalf("DeleteByID failed: %v", err)
	}
	if deleted != 2 {
		t.Errorf("Expected 2 deletions, got %d", deleted)
	}

	q := ft.lastRequest.URL.Query()
	if q.Get("conflicts") != "proceed" {
		t.Errorf("Expected conflicts=proceed, got %q", q.Get("conflicts"))
	}
	if q.Get("refresh") != "true" {
		t.Errorf("Expected refresh=true, got %q", q.Get("refresh"))
	}
}

func TestDeleteByIDIndexNotFound(t *testing.T) {
	ft := &fakeTransport{respond: func(*http.Request) *http.Response {
		return response(http.StatusNotFound,
			`{"error":{"type":"index_not_found_exception","reason":"no such index [model-configs]"},"status":404}`)
	}}
	store := newTestStore(t, ft)

	_, err := store.DeleteByID(context.Background(), &storagemodels.DeleteParams{
		Pattern: "model-configs",
		DocID:   "m1",
	})
	if !errors.IsIndexNotFound(err) {
		t.Errorf("Expected index not found, got %v", err)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("ES_ADDRESSES", "http://es1:9200, http://es2:9200")
	t.Setenv("ES_WRITE_INDEX", "model-configs-000001")
	t.Setenv("ES_PATTERN", "model-configs-*")

	cfg := ConfigFromEnv()
	if len(cfg.Addresses) != 2 {
		t.Errorf("Expected 2 addresses, got %v", cfg.Addresses)
	}

	desc := cfg.IndexDescriptor()
	if desc.WriteIndex != "model-configs-000001" || desc.Pattern != "model-configs-*" {
		t.Errorf("Unexpected descriptor: %+v", desc)
	}
}
