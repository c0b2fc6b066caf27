// Package merge implements the deep-merge engine that folds an ordered
// sequence of JSON documents into one combined configuration document.
//
// The fold is not commutative: each document is merged as the source into the
// running accumulator, so on conflicting scalars the most recently merged
// document wins, while keys it does not touch survive from earlier documents.
package merge

import (
	"encoding/json"

	"github.com/mcptools/mcpconf/pkg/errors"
)

// ServersKey is the required top-level key of the combined document.
const ServersKey = "mcpServers"

// NewRoot returns the fixed empty top-level structure the accumulator
// starts from.
func NewRoot() map[string]interface{} {
	return map[string]interface{}{
		ServersKey: map[string]interface{}{},
	}
}

// Documents merges the given documents in order into a fresh root structure.
// An empty or nil input yields the empty root.
func Documents(docs []map[string]interface{}) map[string]interface{} {
	combined := NewRoot()
	for _, doc := range docs {
		combined = Deep(doc, combined)
	}
	return combined
}

// Deep merges source into destination, key by key, and returns destination:
//
//   - both values are objects: merged recursively, source's nested scalars win
//   - both values are arrays: destination's entries first, source's appended
//     (duplicates are kept)
//   - type mismatch, or both scalars: source replaces destination
//   - key only in source: added to destination
//
// destination is modified in place.
func Deep(source, destination map[string]interface{}) map[string]interface{} {
	for key, value := range source {
		existing, ok := destination[key]
		if !ok {
			destination[key] = value
			continue
		}
		switch src := value.(type) {
		case map[string]interface{}:
			if dst, isMap := existing.(map[string]interface{}); isMap {
				destination[key] = Deep(src, dst)
				continue
			}
			destination[key] = value
		case []interface{}:
			if dst, isSlice := existing.([]interface{}); isSlice {
				destination[key] = append(dst, src...)
				continue
			}
			destination[key] = value
		default:
			destination[key] = value
		}
	}
	return destination
}

// Decode parses raw fragment content into a document suitable for merging.
// The fragment must be valid JSON with an object at its root.
func Decode(name string, data []byte) (map[string]interface{}, error) {
	var value interface{}
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, errors.Wrapf(err, errors.ErrParseFailure, "fragment %s is not valid JSON", name)
	}
	doc, ok := value.(map[string]interface{})
	if !ok {
		return nil, errors.Newf(errors.ErrParseFailure, "fragment %s does not contain a JSON object at its root", name)
	}
	return doc, nil
}
