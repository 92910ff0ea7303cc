package words

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCorpusIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default corpus failed validation: %v", err)
	}
	if len(Default()) != 15 {
		t.Errorf("expected 15 built-in words, got %d", len(Default()))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		corpus  Corpus
		wantErr bool
	}{
		{"valid single word", Corpus{"CAT"}, false},
		{"valid multiple words", Corpus{"CAT", "DOG"}, false},
		{"empty corpus", Corpus{}, true},
		{"nil corpus", nil, true},
		{"empty word", Corpus{"CAT", ""}, true},
		{"lowercase word", Corpus{"cat"}, true},
		{"embedded space", Corpus{"TWO WORDS"}, true},
		{"digit", Corpus{"CAT1"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.corpus.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateEmptyReturnsSentinel(t *testing.T) {
	if err := (Corpus{}).Validate(); !errors.Is(err, ErrEmptyCorpus) {
		t.Errorf("expected ErrEmptyCorpus, got %v", err)
	}
}

func TestNewSeededSelectorRejectsInvalidCorpus(t *testing.T) {
	if _, err := NewSeededSelector(Corpus{}, 1); err == nil {
		t.Fatal("expected error for empty corpus")
	}
	if _, err := NewSeededSelector(Corpus{"bad"}, 1); err == nil {
		t.Fatal("expected error for lowercase corpus")
	}
}

func TestPickCoversCorpus(t *testing.T) {
	corpus := Corpus{"CAT", "DOG", "OWL"}
	sel, err := NewSeededSelector(corpus, 42)
	if err != nil {
		t.Fatalf("NewSeededSelector failed: %v", err)
	}

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		w := sel.Pick()
		seen[w] = true

		found := false
		for _, c := range corpus {
			if c == w {
				found = true
			}
		}
		if !found {
			t.Fatalf("Pick returned %q, not in corpus", w)
		}
	}

	if len(seen) != len(corpus) {
		t.Errorf("expected all %d words picked over 200 draws, saw %d", len(corpus), len(seen))
	}
}

func TestPickDeterministicWithSeed(t *testing.T) {
	a, _ := NewSeededSelector(Default(), 7)
	b, _ := NewSeededSelector(Default(), 7)
	for i := 0; i < 20; i++ {
		if got, want := a.Pick(), b.Pick(); got != want {
			t.Fatalf("draw %d diverged: %q vs %q", i, got, want)
		}
	}
}

func TestLoadFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "words.yaml")

	content := `
words:
  - cathode
  - raster
  - PHOSPHOR
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write word file: %v", err)
	}

	corpus, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	want := Corpus{"CATHODE", "RASTER", "PHOSPHOR"}
	if len(corpus) != len(want) {
		t.Fatalf("expected %d words, got %d", len(want), len(corpus))
	}
	for i := range want {
		if corpus[i] != want[i] {
			t.Errorf("word %d: expected %q, got %q", i, want[i], corpus[i])
		}
	}
}

func TestLoadFileErrors(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"empty list", "words: []\n"},
		{"invalid word", "words:\n  - \"not a word\"\n"},
		{"unknown field", "wordz:\n  - cat\n"},
		{"malformed yaml", "words: [unclosed\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write fixture: %v", err)
			}
			if _, err := LoadFile(path); err == nil {
				t.Errorf("expected error for %s", tt.name)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
