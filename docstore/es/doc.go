/*
Package es provides an Elasticsearch implementation of the DocumentStore
interface.

The backend maps the store primitives onto the cluster as follows:

  - CreateOnly: index with op_type=create and refresh=true. A 409 or a
    version_conflict_engine_exception reports errors.ErrConflict.
  - SearchLatest: constant-score ids query over the index pattern,
    sorted by _index descending, so the first hit belongs to the most
    recently created index generation.
  - DeleteByID: _delete_by_query with conflicts=proceed and refresh,
    across every index the pattern matches.

An index_not_found_exception from search or delete reports
errors.ErrIndexNotFound; the provider treats it the same as zero hits.

Configuration comes from a YAML file or environment variables (with
optional .env loading):

	cfg, err := es.LoadConfig("modelstore.yaml")
	store, err := es.New(cfg)

Index lifecycle (creation, rollover, retention) is managed outside this
module.
*/
package es
