package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Link is one external link on a project card, e.g. {"github", "https://..."}.
type Link struct {
	Kind string
	URL  string
}

// LinkMap holds a project's links as an ordered sequence of pairs.
// It marshals to and from a plain JSON object, keeping the key order
// the admin entered them in — a regular map would shuffle them on
// every round trip.
type LinkMap []Link

// Get returns the URL for kind, or "" when absent.
func (m LinkMap) Get(kind string) string {
	for _, l := range m {
		if l.Kind == kind {
			return l.URL
		}
	}
	return ""
}

// Set replaces the URL for kind in place, appending when absent.
func (m *LinkMap) Set(kind, url string) {
	for i, l := range *m {
		if l.Kind == kind {
			(*m)[i].URL = url
			return
		}
	}
	*m = append(*m, Link{Kind: kind, URL: url})
}

// MarshalJSON renders the pairs as a JSON object in insertion order.
func (m LinkMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, l := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(l.Kind)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(l.URL)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object token by token so the original key
// order survives.
func (m *LinkMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*m = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("links: expected JSON object, got %v", tok)
	}

	out := LinkMap{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("links: non-string key %v", keyTok)
		}
		var url string
		if err := dec.Decode(&url); err != nil {
			return fmt.Errorf("links[%s]: %w", key, err)
		}
		out.Set(key, url)
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return err
	}
	*m = out
	return nil
}
