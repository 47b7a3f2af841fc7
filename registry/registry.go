// Package registry turns the JSON registry bundle this server ships
// (dimension types, biomes, damage types, painting/wolf variants, and
// whatever else the client needs registered before it can enter Play) into
// the single NBT compound the Configuration-state RegistryData packet
// replays verbatim to every client.
package registry

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/go-mclib/mcserver/nbt"
)

// Load reads a JSON file shaped like the vanilla registry data dump (one
// top-level key per registry, e.g. "minecraft:dimension_type") and
// converts it to NBT, numbers and all.
func Load(path string) (nbt.Compound, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry file: %w", err)
	}

	var root map[string]any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse registry json: %w", err)
	}

	return toCompound(root)
}

func toTag(v any) (nbt.Tag, error) {
	switch val := v.(type) {
	case nil:
		return nil, fmt.Errorf("null value in registry")
	case bool:
		return nil, fmt.Errorf("bool value in registry")
	case float64:
		if val == math.Trunc(val) && val >= math.MinInt32 && val <= math.MaxInt32 {
			return nbt.Int(int32(val)), nil
		}
		if val == math.Trunc(val) {
			return nbt.Long(int64(val)), nil
		}
		return nbt.Float(float32(val)), nil
	case string:
		return nbt.String(val), nil
	case []any:
		return toList(val)
	case map[string]any:
		return toCompound(val)
	default:
		return nil, fmt.Errorf("unsupported registry value type %T", v)
	}
}

func toList(arr []any) (nbt.List, error) {
	list := nbt.List{}
	for i, v := range arr {
		tag, err := toTag(v)
		if err != nil {
			return nbt.List{}, fmt.Errorf("list element %d: %w", i, err)
		}
		if i == 0 {
			list.ElementType = tag.ID()
		}
		list.Elements = append(list.Elements, tag)
	}
	return list, nil
}

func toCompound(obj map[string]any) (nbt.Compound, error) {
	compound := make(nbt.Compound, len(obj))
	for k, v := range obj {
		tag, err := toTag(v)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		compound[k] = tag
	}
	return compound, nil
}
