package kana

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHiragana(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"ア", "あ"},
		{"イ", "い"},
		{"カ", "か"},
		{"ガ", "が"},
		{"パ", "ぱ"},
		{"ン", "ん"},
		{"ー", "ー"},
		{"abc", "abc"},
		{"あいう", "あいう"},
	}
	for _, tt := range tests {
		if got := ToHiragana(tt.in); got != tt.out {
			t.Errorf("ToHiragana(%q) = %q; want %q", tt.in, got, tt.out)
		}
	}
}

func TestToKatakana(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"おしえる", "オシエル"},
		{"ゆき", "ユキ"},
		{"カタカナ", "カタカナ"},
		{"教える", "教エル"},
		{"ゔ", "ヴ"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.out, ToKatakana(tt.in), "ToKatakana(%q)", tt.in)
	}
}

func TestTailLen(t *testing.T) {
	assert.Equal(t, 2, TailLen("教える"))
	assert.Equal(t, 1, TailLen("言っ"))
	assert.Equal(t, 0, TailLen("漢字"))
	assert.Equal(t, 3, TailLen("すごい"))
	assert.Equal(t, 0, TailLen(""))
}

func TestRuneClasses(t *testing.T) {
	assert.True(t, IsKana('あ'))
	assert.True(t, IsKana('ア'))
	assert.True(t, IsKana('ー'))
	assert.False(t, IsKana('a'))
	assert.False(t, IsKana('食'))
	assert.True(t, IsKanji('食'))
	assert.True(t, IsKanji('々'))
	assert.False(t, IsKanji('た'))
	assert.True(t, HasKanji("食べる"))
	assert.False(t, HasKanji("たべる"))
	assert.Equal(t, 2, CountKana("食べる"))
	assert.Equal(t, '食', FirstRune("食べる"))
	assert.Equal(t, 'る', LastRune("食べる"))
	assert.Equal(t, 3, Len("食べる"))
}

// stubKanji replaces a fixed set of kanji words and counts its calls.
type stubKanji struct {
	words map[string]string
	calls int
}

func (s *stubKanji) KanjiToKatakana(text string) string {
	s.calls++
	for k, v := range s.words {
		text = strings.ReplaceAll(text, k, v)
	}
	return text
}

func TestNormalizerStageOrder(t *testing.T) {
	stub := &stubKanji{words: map[string]string{"教": "オシ"}}
	n, err := NewNormalizer(stub, 0)
	require.NoError(t, err)

	assert.Equal(t, "オシエル", n.Normalize("教える"))
	assert.Equal(t, "ユキ", n.Normalize("ゆき"))
}

func TestNormalizerIdempotent(t *testing.T) {
	stub := &stubKanji{words: map[string]string{"漢字": "カンジ"}}
	n, err := NewNormalizer(stub, 16)
	require.NoError(t, err)

	for _, in := range []string{"漢字", "かんじ", "カンジ", "ｶﾝｼﾞ"} {
		once := n.Normalize(in)
		assert.Equal(t, once, n.Normalize(once), "normalizing %q twice", in)
	}
}

func TestNormalizerFoldsHalfWidth(t *testing.T) {
	n, err := NewNormalizer(&stubKanji{}, 0)
	require.NoError(t, err)
	assert.Equal(t, "カナ", n.Normalize("ｶﾅ"))
}

func TestNormalizerCaches(t *testing.T) {
	stub := &stubKanji{}
	n, err := NewNormalizer(stub, 8)
	require.NoError(t, err)

	n.Normalize("ゆき")
	n.Normalize("ゆき")
	assert.Equal(t, 1, stub.calls)
}

func TestNewNormalizerRejectsNil(t *testing.T) {
	_, err := NewNormalizer(nil, 0)
	assert.Error(t, err)
}
