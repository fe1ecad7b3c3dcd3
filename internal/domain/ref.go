package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type RefType string

const (
	RefUser     RefType = "User"
	RefCompany  RefType = "Company"
	RefPost     RefType = "Post"
	RefJobOffer RefType = "JobOffer"
)

// Ref is a typed reference whose identity arrives either as a bare id
// (unresolved) or as the populated object (resolved). Exactly one of the two
// forms is present; use Unresolved or Object to tell them apart.
type Ref struct {
	Type   RefType
	rawID  string
	object json.RawMessage
}

// UnresolvedRef builds a reference carrying only an id.
func UnresolvedRef(t RefType, id string) Ref {
	return Ref{Type: t, rawID: id}
}

// ResolvedRef builds a reference carrying the populated object.
func ResolvedRef(t RefType, object any) (Ref, error) {
	raw, err := json.Marshal(object)
	if err != nil {
		return Ref{}, err
	}
	return Ref{Type: t, object: raw}, nil
}

// IsZero reports whether the reference is absent.
func (r Ref) IsZero() bool {
	return r.Type == "" && r.rawID == "" && len(r.object) == 0
}

// Unresolved returns the bare id when the reference was not populated.
func (r Ref) Unresolved() (string, bool) {
	if len(r.object) > 0 {
		return "", false
	}
	return r.rawID, r.rawID != ""
}

// Object decodes the populated form into dst. It returns false for an
// unresolved reference or an object that does not decode.
func (r Ref) Object(dst any) bool {
	if len(r.object) == 0 {
		return false
	}
	return json.Unmarshal(r.object, dst) == nil
}

// ResolvedID returns the nested _id (or id) of a populated reference.
func (r Ref) ResolvedID() (string, bool) {
	var obj struct {
		UnderscoreID string `json:"_id"`
		ID           string `json:"id"`
	}
	if !r.Object(&obj) {
		return "", false
	}
	if obj.UnderscoreID != "" {
		return obj.UnderscoreID, true
	}
	return obj.ID, obj.ID != ""
}

// AnyID returns whichever id is available, preferring the bare form.
func (r Ref) AnyID() string {
	if id, ok := r.Unresolved(); ok {
		return id
	}
	id, _ := r.ResolvedID()
	return id
}

type refWire struct {
	Type RefType         `json:"type"`
	ID   json.RawMessage `json:"id"`
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*r = Ref{}
		return nil
	}

	var w refWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	out := Ref{Type: w.Type}
	raw := bytes.TrimSpace(w.ID)
	switch {
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
	case raw[0] == '"':
		if err := json.Unmarshal(raw, &out.rawID); err != nil {
			return err
		}
	case raw[0] == '{':
		out.object = append(json.RawMessage(nil), raw...)
	default:
		return fmt.Errorf("ref %s: unsupported id form %s", w.Type, string(raw))
	}
	*r = out
	return nil
}

func (r Ref) MarshalJSON() ([]byte, error) {
	if r.IsZero() {
		return []byte("null"), nil
	}
	w := refWire{Type: r.Type}
	if len(r.object) > 0 {
		w.ID = r.object
	} else {
		id, err := json.Marshal(r.rawID)
		if err != nil {
			return nil, err
		}
		w.ID = id
	}
	return json.Marshal(w)
}
