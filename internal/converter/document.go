package converter

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/goccy/go-json"
)

// Kind is the shape of a document's root value.
type Kind int

const (
	KindScalar Kind = iota
	KindArray
	KindObject
)

// Document is the decoded root of a channel JSON file. Object keys are kept
// in document order so the first matching list can be found.
type Document struct {
	Kind   Kind
	Items  []any
	Keys   []string
	Fields map[string]any
}

// Decode parses data into a Document. Nested values decode to the usual
// generic shapes (map[string]any, []any, string, json.Number, bool, nil).
func Decode(data []byte) (*Document, error) {
	if !utf8.Valid(data) {
		return nil, wrap(ErrMalformedInput, errors.New("input is not valid UTF-8"))
	}
	// The token stream below does not check separators, so the whole input
	// is validated up front. This also yields the decoder's error detail.
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, wrap(ErrMalformedInput, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, wrap(ErrUnexpected, err)
	}

	doc := &Document{Kind: KindScalar}
	switch tok {
	case json.Delim('['):
		doc.Kind = KindArray
		doc.Items = []any{}
		for dec.More() {
			var v any
			if err := dec.Decode(&v); err != nil {
				return nil, wrap(ErrUnexpected, err)
			}
			doc.Items = append(doc.Items, v)
		}
	case json.Delim('{'):
		doc.Kind = KindObject
		doc.Fields = make(map[string]any)
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return nil, wrap(ErrUnexpected, err)
			}
			key, ok := kt.(string)
			if !ok {
				return nil, wrap(ErrUnexpected, fmt.Errorf("object key is %T, not string", kt))
			}
			var v any
			if err := dec.Decode(&v); err != nil {
				return nil, wrap(ErrUnexpected, err)
			}
			// Repeated keys keep their first position and their last value.
			if _, seen := doc.Fields[key]; !seen {
				doc.Keys = append(doc.Keys, key)
			}
			doc.Fields[key] = v
		}
	}
	return doc, nil
}

// Channels locates the list of channel records: the root array, the "data"
// or "channels" list, or the first field holding a non-empty list of objects.
// It returns ErrNoChannelData when the located list is empty or none exists.
func (d *Document) Channels() ([]any, error) {
	var channels []any
	switch d.Kind {
	case KindArray:
		channels = d.Items
	case KindObject:
		if v, ok := d.Fields["data"].([]any); ok {
			channels = v
		} else if v, ok := d.Fields["channels"].([]any); ok {
			channels = v
		} else {
			for _, key := range d.Keys {
				v, ok := d.Fields[key].([]any)
				if !ok || len(v) == 0 {
					continue
				}
				if _, isObj := v[0].(map[string]any); isObj {
					channels = v
					break
				}
			}
		}
	}
	if len(channels) == 0 {
		return nil, ErrNoChannelData
	}
	return channels, nil
}
