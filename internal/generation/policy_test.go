package generation

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/abhisek/vedic/internal/llm"
)

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestWithPolicy_FallbackPuzzle(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddError(errors.New("boom"))
	src := WithPolicy(NewClient(mock, DefaultConfig()), PolicyFallback, nil)

	p, err := src.Puzzle(t.Context(), mustTechnique(t, "urdhva"))
	if err != nil {
		t.Fatalf("fallback policy returned error: %v", err)
	}
	if p.Question != "35 × 35" || p.Answer != 1225 {
		t.Errorf("got %q = %v, want the fallback puzzle", p.Question, p.Answer)
	}
	if p.SutraUsed != "Ekadhikena Purvena" || len(p.Steps) != 4 {
		t.Errorf("unexpected fallback: %+v", p)
	}
}

func TestWithPolicy_FallbackOnUnavailable(t *testing.T) {
	src := WithPolicy(NewClient(llm.Unavailable(nil), DefaultConfig()), PolicyFallback, nil)
	tech := mustTechnique(t, "nikhilam")

	tut, err := src.Tutorial(t.Context(), tech)
	if err != nil {
		t.Fatalf("Tutorial: %v", err)
	}
	if !reflect.DeepEqual(tut, FallbackTutorial()) {
		t.Errorf("expected fallback tutorial, got %+v", tut)
	}

	d, err := src.Detail(t.Context(), tech)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if !reflect.DeepEqual(d, FallbackDetail()) {
		t.Errorf("expected fallback detail, got %+v", d)
	}
}

func TestWithPolicy_PassesSuccessThrough(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddJSON(validPuzzle)
	src := WithPolicy(NewClient(mock, DefaultConfig()), PolicyFallback, nil)

	p, err := src.Puzzle(t.Context(), mustTechnique(t, "ekadhikena"))
	if err != nil {
		t.Fatal(err)
	}
	if p.Answer != 2025 {
		t.Errorf("answer = %v, want 2025", p.Answer)
	}
}

func TestWithPolicy_Surface(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddError(&llm.ErrProviderUnavailable{Err: errors.New("down")})
	src := WithPolicy(NewClient(mock, DefaultConfig()), PolicySurface, nil)

	p, err := src.Puzzle(t.Context(), mustTechnique(t, "urdhva"))
	if err == nil {
		t.Fatalf("expected error, got %+v", p)
	}
	var un *llm.ErrProviderUnavailable
	if !errors.As(err, &un) {
		t.Errorf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestFallbacks_AreFreshCopies(t *testing.T) {
	a := FallbackPuzzle()
	a.Steps[0] = "changed"
	if FallbackPuzzle().Steps[0] == "changed" {
		t.Error("fallback puzzle shares its steps slice")
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"", PolicyFallback, false},
		{"fallback", PolicyFallback, false},
		{" Surface ", PolicySurface, false},
		{"crash", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePolicy(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePolicy(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
