package questions

import (
	"errors"
	"testing"
)

func TestDefaultRegistryShape(t *testing.T) {
	r := Default()

	if r.Len() != 22 {
		t.Fatalf("Len() = %d, want 22", r.Len())
	}
	if err := Validate(r.All()); err != nil {
		t.Fatalf("default registry invalid: %v", err)
	}

	first := r.At(0)
	if first.Key != CompanyKey {
		t.Errorf("first key = %q, want %q", first.Key, CompanyKey)
	}
	last := r.At(r.Len() - 1)
	if !last.Final || last.Key != "spoc" {
		t.Errorf("last question = %+v, want final spoc", last)
	}

	summarize := 0
	for _, q := range r.All() {
		if q.Summarize {
			summarize++
		}
	}
	if summarize != 6 {
		t.Errorf("summarize questions = %d, want 6", summarize)
	}

	for phase := 1; phase <= NumPhases; phase++ {
		if PhaseName(phase) == "" {
			t.Errorf("phase %d has no name", phase)
		}
		if len(r.InPhase(phase)) == 0 {
			t.Errorf("phase %d has no questions", phase)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		qs      []Question
		wantErr bool
	}{
		{
			name: "valid",
			qs: []Question{
				{Phase: 1, Key: "a", Kind: FreeText},
				{Phase: 1, Key: "b", Kind: SingleSelect, Options: []string{"x", "y"}},
				{Phase: 2, Key: "c", Kind: MultiSelect, Options: []string{"x"}, Final: true},
			},
		},
		{
			name:    "empty key",
			qs:      []Question{{Phase: 1, Kind: FreeText}},
			wantErr: true,
		},
		{
			name: "duplicate key",
			qs: []Question{
				{Phase: 1, Key: "a", Kind: FreeText},
				{Phase: 1, Key: "a", Kind: FreeText},
			},
			wantErr: true,
		},
		{
			name: "decreasing phase",
			qs: []Question{
				{Phase: 2, Key: "a", Kind: FreeText},
				{Phase: 1, Key: "b", Kind: FreeText},
			},
			wantErr: true,
		},
		{
			name:    "phase out of range",
			qs:      []Question{{Phase: 8, Key: "a", Kind: FreeText}},
			wantErr: true,
		},
		{
			name:    "select without options",
			qs:      []Question{{Phase: 1, Key: "a", Kind: SingleSelect}},
			wantErr: true,
		},
		{
			name:    "text with options",
			qs:      []Question{{Phase: 1, Key: "a", Kind: FreeText, Options: []string{"x"}}},
			wantErr: true,
		},
		{
			name:    "duplicate option",
			qs:      []Question{{Phase: 1, Key: "a", Kind: MultiSelect, Options: []string{"x", "x"}}},
			wantErr: true,
		},
		{
			name: "last not final",
			qs: []Question{
				{Phase: 1, Key: "a", Kind: FreeText},
				{Phase: 1, Key: "b", Kind: FreeText},
			},
			wantErr: true,
		},
		{
			name: "final not last",
			qs: []Question{
				{Phase: 1, Key: "a", Kind: FreeText, Final: true},
				{Phase: 1, Key: "b", Kind: FreeText},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.qs)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidRegistry) {
					t.Errorf("Validate() = %v, want ErrInvalidRegistry", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestRegistryIsReadOnly(t *testing.T) {
	opts := []string{"Red", "Blue"}
	r, err := New([]Question{{Phase: 1, Key: "color", Kind: SingleSelect, Options: opts, Final: true}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	opts[0] = "Green"
	q := r.At(0)
	if q.Options[0] != "Red" {
		t.Errorf("registry aliased caller slice: %v", q.Options)
	}

	q.Options[1] = "Black"
	if got := r.At(0).Options[1]; got != "Blue" {
		t.Errorf("At() returned shared slice: option = %q", got)
	}
}

func TestLookupAndIndex(t *testing.T) {
	r := Default()

	q, ok := r.Lookup("pipeline_count")
	if !ok || q.Kind != SingleSelect || q.Phase != 2 {
		t.Errorf("Lookup(pipeline_count) = %+v, %v", q, ok)
	}
	if _, ok := r.Lookup("missing"); ok {
		t.Error("Lookup(missing) found a question")
	}
	if r.Index(CompanyKey) != 0 {
		t.Errorf("Index(%s) = %d, want 0", CompanyKey, r.Index(CompanyKey))
	}
	if r.Index("missing") != -1 {
		t.Errorf("Index(missing) = %d, want -1", r.Index("missing"))
	}
}

func TestAnswerRendering(t *testing.T) {
	if got := Text("Acme").String(); got != "Acme" {
		t.Errorf("Text.String() = %q", got)
	}
	if got := Multi([]string{"A", "C"}).String(); got != "A, C" {
		t.Errorf("Multi.String() = %q", got)
	}

	data, err := Multi([]string{"A", "C"}).MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `["A","C"]` {
		t.Errorf("Multi JSON = %s", data)
	}
	data, err = Text("Acme").MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"Acme"` {
		t.Errorf("Text JSON = %s", data)
	}
}
