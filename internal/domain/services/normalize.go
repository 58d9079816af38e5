package services

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/gjson"
)

// payloadKeys are the conventional wrapper keys probed, in order, when the
// upstream answers with an object instead of a list.
var payloadKeys = []string{
	"data", "results", "items",
	"gods", "Gods",
	"heroes", "Heroes",
	"monsters", "Monsters",
	"titans", "Titans",
}

// NormalizePayload converts an upstream JSON value of unknown shape into an
// ordered list of raw records. Element and key order of the payload is kept.
// Unrecognized shapes yield an empty list, never an error.
//
// Rules, first match wins:
//  1. null or empty body: no records
//  2. a list: returned as is
//  3. an object with a conventional wrapper key holding a list: that list
//  4. an object with exactly one key holding a list: that list
//  5. an object whose values are all objects: those values, keys dropped
//  6. anything else: no records
func NormalizePayload(payload []byte) []json.RawMessage {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []json.RawMessage{}
	}

	// Strict parse first: the documented shape is a plain list of records.
	var list []json.RawMessage
	if err := json.Unmarshal(trimmed, &list); err == nil {
		return list
	}

	root := gjson.ParseBytes(trimmed)
	if !root.IsObject() {
		return []json.RawMessage{}
	}

	for _, key := range payloadKeys {
		if value := root.Get(key); value.IsArray() {
			return elements(value)
		}
	}

	var values []gjson.Result
	root.ForEach(func(_, value gjson.Result) bool {
		values = append(values, value)
		return true
	})

	if len(values) == 1 && values[0].IsArray() {
		return elements(values[0])
	}

	records := make([]json.RawMessage, 0, len(values))
	for _, value := range values {
		if !value.IsObject() {
			return []json.RawMessage{}
		}
		records = append(records, json.RawMessage(value.Raw))
	}
	return records
}

// elements returns the raw JSON of every element of a gjson array.
func elements(array gjson.Result) []json.RawMessage {
	items := array.Array()
	out := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		out = append(out, json.RawMessage(item.Raw))
	}
	return out
}
