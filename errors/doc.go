/*
Package errors defines the semantic error taxonomy of the model store.

Two layers share this vocabulary:

Provider-level errors are what callers of the store observe. Each typed
error matches its sentinel through errors.Is, so callers can branch on
the kind without knowing the concrete type:

	err := <-storeResult
	switch {
	case errors.IsNotFound(err):
	    // 404
	case errors.IsAlreadyExists(err):
	    // 409
	default:
	    // 500
	}

Store-layer kinds (ErrConflict, ErrIndexNotFound) are reported by
DocumentStore backends and consumed by the provider's classification
logic; they never escape the provider unwrapped. Raw backend errors are
carried as wrapped causes inside SerializationError, DeserializationError
and StorageError for diagnostics.
*/
package errors
