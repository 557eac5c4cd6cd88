package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/japaniel/kurosu/pkg/kana"
	"github.com/japaniel/kurosu/pkg/stems"
)

type mapConverter map[string]string

func (m mapConverter) KanjiToKatakana(text string) string {
	if v, ok := m[text]; ok {
		return v
	}
	return text
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("健康 \r\n猫\n\n言っ\n"), 0o644))

	words, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"健康", "猫", "", "言っ"}, words)

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestInitialFilter(t *testing.T) {
	table := stems.NewTable()
	table.Add("言っ", "言う")
	list := stems.NewList()
	list.Add("食べ")
	resolver := stems.NewResolver(table, list, nil)

	words := []string{"", "言っ", strings.Repeat("長", 11), "食べ", "猫", "犬"}
	opts := DefaultOptions()
	opts.Limit = 3

	got := InitialFilter(words, opts, resolver)
	assert.Equal(t, []string{"言う", "食べる", "猫"}, got)
}

func TestInitialFilterWithoutResolver(t *testing.T) {
	got := InitialFilter([]string{"言っ", "a"}, Options{MinLen: 2}, nil)
	assert.Equal(t, []string{"言っ"}, got)
}

func TestConvert(t *testing.T) {
	n, err := kana.NewNormalizer(mapConverter{"健康": "ケンコウ"}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"ケンコウ", "ネコ"}, Convert([]string{"健康", "ねこ"}, n))
}

func TestFilter(t *testing.T) {
	words := []string{"健康", "ねこ", "言う", "健康", "長文"}
	kk := []string{"ケンコウ", "ネコ", "イウ", "ケンコウ", "チョウブンチョウブンチョウ"}

	opts := DefaultOptions()
	opts.KanaLimit = 0.9
	gotWords, gotKana, err := Filter(words, kk, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"健康", "言う"}, gotWords)
	assert.Equal(t, []string{"ケンコウ", "イウ"}, gotKana)

	opts.AllowDuplicates = true
	gotWords, _, err = Filter(words, kk, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"健康", "言う", "健康"}, gotWords)

	opts.KanaLimit = 0
	gotWords, _, err = Filter(words, kk, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"健康", "健康"}, gotWords)

	_, _, err = Filter(words, kk[:1], opts)
	assert.Error(t, err)
}
