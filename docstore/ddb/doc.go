/*
Package ddb provides a DynamoDB implementation of the DocumentStore
interface, for deployments that keep model configurations in DynamoDB
instead of a search cluster.

Table layout:

	ModelId   (S)  partition key — the document identifier
	IndexName (S)  sort key      — the index generation the document belongs to
	Payload   (B)                — the stored payload

The mapping of store primitives:

  - CreateOnly: conditional PutItem on attribute_not_exists, so a
    duplicate id in the same index generation reports errors.ErrConflict
    without overwriting.
  - SearchLatest: Query on the identifier's partition with a begins_with
    condition derived from the index pattern, ScanIndexForward=false, so
    the first item belongs to the lexicographically greatest index name.
  - DeleteByID: paged Query plus per-item DeleteItem, counting removals
    and skipping items that vanish mid-sweep.

A missing table surfaces as errors.ErrIndexNotFound, matching the
"pattern resolves to nothing" condition of search backends.

Only trailing-wildcard patterns (for example "model-configs-*") and
exact index names are supported; that covers rolling index generations
sharing a common prefix.
*/
package ddb
