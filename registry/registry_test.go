package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-mclib/mcserver/nbt"
)

func TestToTag(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want nbt.Tag
	}{
		{"small int", float64(5), nbt.Int(5)},
		{"negative int", float64(-64), nbt.Int(-64)},
		{"beyond int32", float64(int64(1) << 40), nbt.Long(int64(1) << 40)},
		{"fraction", float64(0.8), nbt.Float(0.8)},
		{"string", "minecraft:overworld", nbt.String("minecraft:overworld")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := toTag(tt.in)
			if err != nil {
				t.Fatalf("toTag(%v): %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("toTag(%v) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestToTagRejectsNullAndBool(t *testing.T) {
	if _, err := toTag(nil); err == nil {
		t.Fatal("expected error for nil value")
	}
	if _, err := toTag(true); err == nil {
		t.Fatal("expected error for bool value")
	}
}

func TestToCompoundNested(t *testing.T) {
	obj := map[string]any{
		"name": "minecraft:plains",
		"id":   float64(0),
		"element": map[string]any{
			"temperature": float64(0.8),
			"tags":        []any{"grassy", "flat"},
		},
	}

	compound, err := toCompound(obj)
	if err != nil {
		t.Fatalf("toCompound: %v", err)
	}

	if compound["name"] != nbt.String("minecraft:plains") {
		t.Errorf("name = %#v", compound["name"])
	}
	if compound["id"] != nbt.Int(0) {
		t.Errorf("id = %#v", compound["id"])
	}

	element, ok := compound["element"].(nbt.Compound)
	if !ok {
		t.Fatalf("element is %T, want nbt.Compound", compound["element"])
	}
	if element["temperature"] != nbt.Float(0.8) {
		t.Errorf("temperature = %#v", element["temperature"])
	}

	tags, ok := element["tags"].(nbt.List)
	if !ok {
		t.Fatalf("tags is %T, want nbt.List", element["tags"])
	}
	if len(tags.Elements) != 2 || tags.Elements[0] != nbt.String("grassy") {
		t.Errorf("tags = %#v", tags)
	}
}

func TestLoadReadsRegistryFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "registry.json")
	content := `{
		"minecraft:dimension_type": {
			"type": "minecraft:dimension_type",
			"value": [
				{"name": "minecraft:overworld", "id": 0, "element": {"natural": 1}}
			]
		}
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	compound, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	dimType, ok := compound["minecraft:dimension_type"].(nbt.Compound)
	if !ok {
		t.Fatalf("minecraft:dimension_type is %T", compound["minecraft:dimension_type"])
	}
	if dimType["type"] != nbt.String("minecraft:dimension_type") {
		t.Errorf("type = %#v", dimType["type"])
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
