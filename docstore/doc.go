/*
Package docstore defines the document store interface the model store is
built on.

The interface is deliberately narrow: a create-only indexed write, an
identifier-scoped search across an index pattern, and a delete-by-query.
Index lifecycle (creation, rollover, retention) is managed outside this
module; backends only consume a write index name and an index pattern.

Implementations:
  - es: Elasticsearch implementation, the canonical backend
  - ddb: DynamoDB implementation for deployments without a search cluster
  - mock: in-memory implementation for testing
*/
package docstore
