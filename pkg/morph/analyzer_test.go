package morph

import (
	"testing"

	"github.com/japaniel/kurosu/pkg/vocab"
)

func newAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	a, err := NewAnalyzer()
	if err != nil {
		t.Fatalf("Failed to create analyzer: %v", err)
	}
	return a
}

func TestAnalyzeVerb(t *testing.T) {
	a := newAnalyzer(t)

	tokens := a.Analyze("食べる")
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d: %+v", len(tokens), tokens)
	}
	tok := tokens[0]
	if tok.BaseForm != "食べる" {
		t.Errorf("BaseForm = %q, want 食べる", tok.BaseForm)
	}
	if tok.Reading != "タベル" {
		t.Errorf("Reading = %q, want タベル", tok.Reading)
	}
	if tok.PrimaryPOS() != "動詞" {
		t.Errorf("PrimaryPOS = %q, want 動詞", tok.PrimaryPOS())
	}
	if !tok.Known {
		t.Error("expected 食べる to be a dictionary word")
	}
}

func TestClassify(t *testing.T) {
	a := newAnalyzer(t)

	tests := []struct {
		word string
		want vocab.ConjugationClass
	}{
		{"食べる", vocab.ClassIchidan},
		{"見る", vocab.ClassIchidan},
		{"言う", vocab.ClassGodan},
		{"書く", vocab.ClassGodan},
		{"泳ぐ", vocab.ClassGodan},
		{"猫", vocab.ClassOther},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			cs, err := a.Classify(tt.word)
			if err != nil {
				t.Fatalf("Classify(%q) error: %v", tt.word, err)
			}
			if len(cs) != 1 {
				t.Fatalf("Classify(%q) returned %d classifications", tt.word, len(cs))
			}
			if cs[0].Class != tt.want {
				t.Errorf("Classify(%q) = %s (%s), want %s", tt.word, cs[0].Class, cs[0].Tag, tt.want)
			}
		})
	}
}

func TestClassifyRejectsMultiTokenInput(t *testing.T) {
	a := newAnalyzer(t)

	cs, err := a.Classify("猫を食べる")
	if err != nil {
		t.Fatalf("Classify error: %v", err)
	}
	if len(cs) != 0 {
		t.Errorf("expected no classifications for a phrase, got %+v", cs)
	}
}

func TestKanjiToKatakana(t *testing.T) {
	a := newAnalyzer(t)

	tests := []struct {
		in, want string
	}{
		{"漢字", "カンジ"},
		{"ねこ", "ねこ"},
		{"", ""},
		{"漢字を書く", "カンジをカク"},
	}
	for _, tt := range tests {
		if got := a.KanjiToKatakana(tt.in); got != tt.want {
			t.Errorf("KanjiToKatakana(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
