package models

import (
	"encoding/json"
	"testing"
)

func TestLinkMap_MarshalKeepsOrder(t *testing.T) {
	m := LinkMap{
		{Kind: "github", URL: "https://github.com/x"},
		{Kind: "demo", URL: "https://demo.example"},
		{Kind: "writeup", URL: "#"},
	}

	raw, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"github":"https://github.com/x","demo":"https://demo.example","writeup":"#"}`
	if string(raw) != want {
		t.Errorf("Marshal() = %s, want %s", raw, want)
	}
}

func TestLinkMap_RoundTripOrder(t *testing.T) {
	// key order must survive marshal -> unmarshal -> marshal
	in := `{"demo":"#","github":"https://github.com/x","docs":"https://docs.example"}`

	var m LinkMap
	if err := json.Unmarshal([]byte(in), &m); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	wantKinds := []string{"demo", "github", "docs"}
	if len(m) != len(wantKinds) {
		t.Fatalf("len = %d, want %d", len(m), len(wantKinds))
	}
	for i, kind := range wantKinds {
		if m[i].Kind != kind {
			t.Errorf("m[%d].Kind = %q, want %q", i, m[i].Kind, kind)
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(out) != in {
		t.Errorf("round trip = %s, want %s", out, in)
	}
}

func TestLinkMap_UnmarshalNull(t *testing.T) {
	var m LinkMap
	if err := json.Unmarshal([]byte(`null`), &m); err != nil {
		t.Fatalf("Unmarshal(null) error = %v", err)
	}
	if len(m) != 0 {
		t.Errorf("len = %d, want 0", len(m))
	}
}

func TestLinkMap_UnmarshalRejectsArray(t *testing.T) {
	var m LinkMap
	if err := json.Unmarshal([]byte(`["github"]`), &m); err == nil {
		t.Error("Unmarshal(array) error = nil, want error")
	}
}

func TestLinkMap_GetSet(t *testing.T) {
	var m LinkMap
	m.Set("github", "#")
	m.Set("demo", "#")
	m.Set("github", "https://github.com/x") // replace in place

	if got := m.Get("github"); got != "https://github.com/x" {
		t.Errorf("Get(github) = %q, want updated URL", got)
	}
	if got := m.Get("missing"); got != "" {
		t.Errorf("Get(missing) = %q, want empty", got)
	}
	if len(m) != 2 {
		t.Errorf("len = %d, want 2", len(m))
	}
	if m[0].Kind != "github" {
		t.Errorf("m[0].Kind = %q, want github (position preserved on update)", m[0].Kind)
	}
}
