package pkg

import (
	"encoding/json"
	"testing"
)

func TestPatch_UnmarshalStates(t *testing.T) {
	type payload struct {
		SubcategoryID Patch[uint] `json:"subcategory_id"`
	}

	tests := []struct {
		name      string
		body      string
		wantSet   bool
		wantNull  bool
		wantValue uint
	}{
		{name: "absent key", body: `{}`, wantSet: false},
		{name: "explicit null", body: `{"subcategory_id":null}`, wantSet: true, wantNull: true},
		{name: "value", body: `{"subcategory_id":5}`, wantSet: true, wantValue: 5},
		{name: "zero value is still set", body: `{"subcategory_id":0}`, wantSet: true, wantValue: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			if err := json.Unmarshal([]byte(tt.body), &p); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}

			if p.SubcategoryID.IsSet() != tt.wantSet {
				t.Errorf("IsSet() = %v, want %v", p.SubcategoryID.IsSet(), tt.wantSet)
			}
			if p.SubcategoryID.IsNull() != tt.wantNull {
				t.Errorf("IsNull() = %v, want %v", p.SubcategoryID.IsNull(), tt.wantNull)
			}
			if tt.wantSet && !tt.wantNull && p.SubcategoryID.Value() != tt.wantValue {
				t.Errorf("Value() = %d, want %d", p.SubcategoryID.Value(), tt.wantValue)
			}
		})
	}
}

func TestPatch_UnmarshalTypeMismatch(t *testing.T) {
	var p struct {
		SubcategoryID Patch[uint] `json:"subcategory_id"`
	}
	if err := json.Unmarshal([]byte(`{"subcategory_id":"five"}`), &p); err == nil {
		t.Fatal("expected error for type mismatch")
	}
}

func TestPatch_Constructors(t *testing.T) {
	v := PatchValue(uint(7))
	if !v.IsSet() || v.IsNull() || v.Value() != 7 {
		t.Errorf("PatchValue(7) = set=%v null=%v value=%d", v.IsSet(), v.IsNull(), v.Value())
	}

	n := PatchNull[uint]()
	if !n.IsSet() || !n.IsNull() {
		t.Errorf("PatchNull() = set=%v null=%v, want both true", n.IsSet(), n.IsNull())
	}

	var zero Patch[uint]
	if zero.IsSet() || zero.IsNull() {
		t.Errorf("zero Patch = set=%v null=%v, want both false", zero.IsSet(), zero.IsNull())
	}
}

func TestPatch_Marshal(t *testing.T) {
	tests := []struct {
		name  string
		patch Patch[uint]
		want  string
	}{
		{"absent marshals as null", Patch[uint]{}, "null"},
		{"null marshals as null", PatchNull[uint](), "null"},
		{"value marshals as value", PatchValue(uint(9)), "9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.patch)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("marshal = %s, want %s", b, tt.want)
			}
		})
	}
}
