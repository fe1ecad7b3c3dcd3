package domain

import (
	"encoding/json"
	"testing"
)

func TestRefUnmarshalForms(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantType     RefType
		wantRaw      string
		wantResolved string
	}{
		{"bare id", `{"type":"JobOffer","id":"j1"}`, RefJobOffer, "j1", ""},
		{"populated object", `{"type":"Post","id":{"_id":"p1","content":"hi"}}`, RefPost, "", "p1"},
		{"populated object with id field", `{"type":"User","id":{"id":"u1"}}`, RefUser, "", "u1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Ref
			if err := json.Unmarshal([]byte(tt.input), &r); err != nil {
				t.Fatalf("Unmarshal error = %v", err)
			}
			if r.Type != tt.wantType {
				t.Errorf("type = %q, want %q", r.Type, tt.wantType)
			}
			raw, _ := r.Unresolved()
			if raw != tt.wantRaw {
				t.Errorf("unresolved = %q, want %q", raw, tt.wantRaw)
			}
			resolved, _ := r.ResolvedID()
			if resolved != tt.wantResolved {
				t.Errorf("resolved id = %q, want %q", resolved, tt.wantResolved)
			}
		})
	}
}

func TestRefRejectsNumericID(t *testing.T) {
	var r Ref
	if err := json.Unmarshal([]byte(`{"type":"Post","id":42}`), &r); err == nil {
		t.Error("numeric id should be rejected")
	}
}

func TestRefRoundTripKeepsForm(t *testing.T) {
	in := `{"type":"Post","id":{"_id":"p1"}}`
	var r Ref
	if err := json.Unmarshal([]byte(in), &r); err != nil {
		t.Fatal(err)
	}
	out, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	var back Ref
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatal(err)
	}
	if _, ok := back.Unresolved(); ok {
		t.Error("resolved reference came back unresolved")
	}
	if id := back.AnyID(); id != "p1" {
		t.Errorf("AnyID = %q, want p1", id)
	}
}

func TestApplicantTransitions(t *testing.T) {
	if !ApplicantStatusPending.CanTransition(ApplicantStatusAccepted) {
		t.Error("pending -> accepted should be allowed")
	}
	if !ApplicantStatusPending.CanTransition(ApplicantStatusRejected) {
		t.Error("pending -> rejected should be allowed")
	}
	if ApplicantStatusAccepted.CanTransition(ApplicantStatusRejected) {
		t.Error("accepted -> rejected should be refused")
	}
	if ApplicantStatusRejected.CanTransition(ApplicantStatusPending) {
		t.Error("rejected -> pending should be refused")
	}
}

func TestDisplayScore(t *testing.T) {
	score := 73
	if got := (JobApplicant{}).DisplayScore(); got != 0 {
		t.Errorf("unscored DisplayScore = %d, want 0", got)
	}
	if got := (JobApplicant{Score: &score}).DisplayScore(); got != 73 {
		t.Errorf("DisplayScore = %d, want 73", got)
	}
}
