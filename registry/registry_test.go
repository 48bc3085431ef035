/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"testing"

	"github.com/suparena/modelstore/codec"
	"github.com/suparena/modelstore/storagemodels"
)

type otherEntity struct {
	ID string `json:"id"`
}

func TestIndexDescriptorPerTypeIsolation(t *testing.T) {
	RegisterIndexDescriptor[storagemodels.ModelConfig](storagemodels.IndexDescriptor{
		WriteIndex: "model-configs-000001",
		Pattern:    "model-configs-*",
	})
	RegisterIndexDescriptor[otherEntity](storagemodels.IndexDescriptor{
		WriteIndex: "other-000001",
		Pattern:    "other-*",
	})

	desc, ok := GetIndexDescriptor[storagemodels.ModelConfig]()
	if !ok {
		t.Fatal("Expected descriptor for ModelConfig")
	}
	if desc.Pattern != "model-configs-*" {
		t.Errorf("Expected pattern %q, got %q", "model-configs-*", desc.Pattern)
	}

	other, ok := GetIndexDescriptor[otherEntity]()
	if !ok {
		t.Fatal("Expected descriptor for otherEntity")
	}
	if other.WriteIndex != "other-000001" {
		t.Errorf("Expected write index %q, got %q", "other-000001", other.WriteIndex)
	}
}

func TestGetIndexDescriptorUnregistered(t *testing.T) {
	type unregistered struct{}
	if _, ok := GetIndexDescriptor[unregistered](); ok {
		t.Error("Expected no descriptor for unregistered type")
	}
}

func TestCodecRegistry(t *testing.T) {
	RegisterCodec("test-json", codec.NewJSON[storagemodels.ModelConfig]())

	c, err := GetCodec[codec.JSON[storagemodels.ModelConfig]]("test-json")
	if err != nil {
		t.Fatalf("GetCodec failed: %v", err)
	}
	if _, err := c.Encode(storagemodels.ModelConfig{ModelID: "m1"}); err != nil {
		t.Errorf("Registered codec should encode: %v", err)
	}

	if _, err := GetCodec[codec.JSON[storagemodels.ModelConfig]]("missing"); err == nil {
		t.Error("Expected error for unregistered codec name")
	}

	if _, err := GetCodec[codec.JSON[otherEntity]]("test-json"); err == nil {
		t.Error("Expected error for mismatched codec type")
	}
}

func TestRegisterCodecDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic on duplicate codec registration")
		}
	}()

	RegisterCodec("dup", codec.NewJSON[storagemodels.ModelConfig]())
	RegisterCodec("dup", codec.NewJSON[storagemodels.ModelConfig]())
}
