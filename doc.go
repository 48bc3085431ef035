/*
Package modelstore persists versioned model-configuration documents in a
searchable document store.

The core type is Provider, a thin, correctness-critical adapter between a
configuration entity and a document store. It offers three asynchronous
operations — Store, Get (latest version), Delete — each issuing exactly
one store request and completing a callback exactly once with a value or
a classified error:

	store, _ := es.New(esCfg)
	provider, _ := modelstore.NewModelConfigProvider(store, logger)

	registry.RegisterIndexDescriptor[storagemodels.ModelConfig](storagemodels.IndexDescriptor{
	    WriteIndex: "model-configs-000001",
	    Pattern:    "model-configs-*",
	})

	done := make(chan error, 1)
	provider.Store(ctx, cfg, func(err error) { done <- err })
	if err := <-done; errors.IsAlreadyExists(err) {
	    // id already taken
	}

Writes are create-only against a single canonical write index, so a
document is never silently overwritten. Reads and deletes span an index
pattern that may also match older index generations carrying prior
versions of the same identifier; Get deterministically resolves the
version from the most recently created index, and Delete removes every
version across the pattern.

Key packages:
  - docstore: the DocumentStore interface and its backends (es, ddb, mock)
  - codec: payload encoding with lenient decoding for stored documents
  - errors: the semantic error taxonomy callers branch on
  - registry: per-type index descriptors and named codecs

For more information, see the documentation at https://github.com/suparena/modelstore
*/
package modelstore
