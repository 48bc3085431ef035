/*
Package registry manages per-type storage metadata for the model store.

Index Registry:
Associates Go entity types with the indices their documents live in:

	registry.RegisterIndexDescriptor[storagemodels.ModelConfig](storagemodels.IndexDescriptor{
	    WriteIndex: "model-configs-000001",
	    Pattern:    "model-configs-*",
	})

Providers resolve the descriptor at operation time, so index generations
can be re-registered during a rollover without rebuilding providers.

Codec Registry:
Maps codec names to codec values:

	registry.RegisterCodec("json", codec.NewJSON[storagemodels.ModelConfig]())

The registries are thread-safe and should be populated during
initialization, typically in init() functions.
*/
package registry
