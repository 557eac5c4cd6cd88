// Package config loads kurosu settings from YAML and the environment.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/japaniel/kurosu/pkg/vocab"
)

// Config is the root configuration.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Vocab    VocabConfig    `yaml:"vocab"`
	Stems    StemsConfig    `yaml:"stems"`
	Output   OutputConfig   `yaml:"output"`
	Wordlist WordlistConfig `yaml:"wordlist"`
	Puzzles  PuzzlesConfig  `yaml:"puzzles"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"KUROSU_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"KUROSU_LOG_FORMAT" env-default:"console"`
}

// VocabConfig describes the ZKanji export and how its frequencies are read.
type VocabConfig struct {
	ExportPath string `yaml:"export_path" env:"KUROSU_VOCAB_EXPORT_PATH" env-default:"zkanji_export.txt"`
	Encoding   string `yaml:"encoding"    env:"KUROSU_VOCAB_ENCODING"    env-default:"utf-8"`
	// Scale is "rank" (lower is more frequent) or "score" (ZKanji F value).
	Scale   string `yaml:"scale"   env:"KUROSU_VOCAB_SCALE"   env-default:"rank"`
	Cutoffs []int  `yaml:"cutoffs" env:"KUROSU_VOCAB_CUTOFFS" env-separator:","`
}

// StemsConfig locates the stem tables and the lexicon used to build them.
type StemsConfig struct {
	GodanTable  string `yaml:"godan_table"  env:"KUROSU_STEMS_GODAN_TABLE"  env-default:"godan_verb_stems.txt"`
	IchidanList string `yaml:"ichidan_list" env:"KUROSU_STEMS_ICHIDAN_LIST" env-default:"ichidan_verb_stems.txt"`
	// Lexicon is "kagome" or "jmdict".
	Lexicon    string `yaml:"lexicon"     env:"KUROSU_STEMS_LEXICON"     env-default:"kagome"`
	JMdictPath string `yaml:"jmdict_path" env:"KUROSU_STEMS_JMDICT_PATH" env-default:"jmdict-eng-common.json"`
	CacheSize  int    `yaml:"cache_size"  env:"KUROSU_STEMS_CACHE_SIZE"  env-default:"20000"`
}

// OutputConfig controls the build outputs.
type OutputConfig struct {
	Prefix       string `yaml:"prefix"        env:"KUROSU_OUTPUT_PREFIX"        env-default:"out/jp"`
	MaxTier      int    `yaml:"max_tier"      env:"KUROSU_OUTPUT_MAX_TIER"      env-default:"5"`
	SnapshotPath string `yaml:"snapshot_path" env:"KUROSU_OUTPUT_SNAPSHOT_PATH" env-default:"out/entries.db"`
}

// WordlistConfig holds the word-list converter settings.
type WordlistConfig struct {
	Input           string  `yaml:"input"            env:"KUROSU_WORDLIST_INPUT"`
	Output          string  `yaml:"output"           env:"KUROSU_WORDLIST_OUTPUT"           env-default:"outdict.dic"`
	Limit           int     `yaml:"limit"            env:"KUROSU_WORDLIST_LIMIT"`
	MinLen          int     `yaml:"min_len"          env:"KUROSU_WORDLIST_MIN_LEN"          env-default:"1"`
	MaxLen          int     `yaml:"max_len"          env:"KUROSU_WORDLIST_MAX_LEN"          env-default:"10"`
	KanaLimit       float64 `yaml:"kana_limit"       env:"KUROSU_WORDLIST_KANA_LIMIT"       env-default:"1.0"`
	MaxLength       int     `yaml:"max_length"       env:"KUROSU_WORDLIST_MAX_LENGTH"       env-default:"10"`
	AllowDuplicates bool    `yaml:"allow_duplicates" env:"KUROSU_WORDLIST_ALLOW_DUPLICATES"`
}

// PuzzlesConfig locates generator output and the processed puzzle files.
type PuzzlesConfig struct {
	RawDir       string `yaml:"raw_dir"       env:"KUROSU_PUZZLES_RAW_DIR"       env-default:"data"`
	ProcessedDir string `yaml:"processed_dir" env:"KUROSU_PUZZLES_PROCESSED_DIR" env-default:"data_processed"`
	BundlePath   string `yaml:"bundle_path"   env:"KUROSU_PUZZLES_BUNDLE_PATH"   env-default:"KameKurosuPuzzleData.json"`
	Version      string `yaml:"version"       env:"KUROSU_PUZZLES_VERSION"       env-default:"0.1"`
	Levels       []int  `yaml:"levels"        env:"KUROSU_PUZZLES_LEVELS"        env-separator:"," env-default:"0,1,2,3,4,5"`
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags). An empty path
// loads from ENV + defaults only.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks the values cleanenv cannot.
func (c *Config) Validate() error {
	if _, err := vocab.ParseEncoding(c.Vocab.Encoding); err != nil {
		return fmt.Errorf("vocab.encoding: %w", err)
	}
	if _, err := c.Vocab.FrequencyScale(); err != nil {
		return fmt.Errorf("vocab: %w", err)
	}
	switch c.Stems.Lexicon {
	case "kagome", "jmdict":
	default:
		return fmt.Errorf("stems.lexicon must be kagome or jmdict (got %q)", c.Stems.Lexicon)
	}
	if c.Output.MaxTier < 0 || c.Output.MaxTier > vocab.MaxLevel {
		return fmt.Errorf("output.max_tier must be in 0..%d (got %d)", vocab.MaxLevel, c.Output.MaxTier)
	}
	if c.Wordlist.KanaLimit < 0 || c.Wordlist.KanaLimit > 1 {
		return fmt.Errorf("wordlist.kana_limit must be in [0, 1] (got %v)", c.Wordlist.KanaLimit)
	}
	return nil
}

// FrequencyScale returns the configured frequency scale.
func (v VocabConfig) FrequencyScale() (vocab.Scale, error) {
	return vocab.NewScale(v.Scale, v.Cutoffs)
}
