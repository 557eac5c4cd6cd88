package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/japaniel/kurosu/pkg/vocab"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kurosu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "rank", cfg.Vocab.Scale)
	assert.Equal(t, "kagome", cfg.Stems.Lexicon)
	assert.Equal(t, 5, cfg.Output.MaxTier)
	assert.Equal(t, 1.0, cfg.Wordlist.KanaLimit)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, cfg.Puzzles.Levels)

	scale, err := cfg.Vocab.FrequencyScale()
	require.NoError(t, err)
	assert.Equal(t, vocab.DefaultRankScale(), scale)
}

func TestLoadYAML(t *testing.T) {
	path := writeYAML(t, `
log:
  level: debug
  format: json
vocab:
  export_path: export.txt
  encoding: shift_jis
  scale: score
stems:
  lexicon: jmdict
output:
  prefix: build/jp
  max_tier: 3
wordlist:
  kana_limit: 0.9
puzzles:
  levels: [0, 2]
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "shift_jis", cfg.Vocab.Encoding)
	assert.Equal(t, "jmdict", cfg.Stems.Lexicon)
	assert.Equal(t, "build/jp", cfg.Output.Prefix)
	assert.Equal(t, 3, cfg.Output.MaxTier)
	assert.Equal(t, 0.9, cfg.Wordlist.KanaLimit)
	assert.Equal(t, []int{0, 2}, cfg.Puzzles.Levels)
	// Unset fields still get defaults.
	assert.Equal(t, "godan_verb_stems.txt", cfg.Stems.GodanTable)

	scale, err := cfg.Vocab.FrequencyScale()
	require.NoError(t, err)
	assert.Equal(t, vocab.ZKanjiScoreScale(), scale)
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, "output:\n  max_tier: 3\n")
	t.Setenv("KUROSU_OUTPUT_MAX_TIER", "2")
	t.Setenv("KUROSU_VOCAB_CUTOFFS", "100,200,300,400")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Output.MaxTier)
	assert.Equal(t, []int{100, 200, 300, 400}, cfg.Vocab.Cutoffs)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := map[string]string{
		"bad lexicon":  "stems:\n  lexicon: mecab\n",
		"bad tier":     "output:\n  max_tier: 9\n",
		"bad encoding": "vocab:\n  encoding: euc-kr\n",
		"bad scale":    "vocab:\n  scale: zipf\n",
		"bad cutoffs":  "vocab:\n  cutoffs: [1, 2]\n",
		"bad ratio":    "wordlist:\n  kana_limit: 1.5\n",
	}
	for name, yaml := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeYAML(t, yaml))
			assert.Error(t, err)
		})
	}
}
