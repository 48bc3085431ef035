/*
Package storagemodels defines the data structures used throughout the
model store.

Key Types:

ModelConfig:
The versioned model configuration document being persisted. Only ModelID
is interpreted by the store; the rest of the document, including the raw
Definition body, is opaque payload.

IndexDescriptor:
Names the canonical write index and the pattern covering prior index
generations:

	desc := storagemodels.IndexDescriptor{
	    WriteIndex: "model-configs-000003",
	    Pattern:    "model-configs-*",
	}

SearchParams / Hit / DeleteParams:
Parameters and results for the DocumentStore primitives. A latest-version
lookup is expressed as:

	params := &storagemodels.SearchParams{
	    Pattern:       desc.Pattern,
	    DocID:         "fraud-classifier-v2",
	    Size:          1,
	    SortIndexDesc: true,
	}

These types provide a consistent interface across different storage
backends.
*/
package storagemodels
