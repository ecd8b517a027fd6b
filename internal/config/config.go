package config

import "time"

// Config is the root application configuration.
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
	Fetch    FetchConfig    `yaml:"fetch"`
	Log      LogConfig      `yaml:"log"`
}

// PipelineConfig holds the dataset file locations and run behavior.
type PipelineConfig struct {
	VocabPath         string `yaml:"vocab_path"          env:"PIPELINE_VOCAB_PATH"          env-default:"data/vocabulary.json"`
	LexiconPath       string `yaml:"lexicon_path"        env:"PIPELINE_LEXICON_PATH"        env-default:"data/TBESG.txt"`
	KeyedFeaturesPath string `yaml:"keyed_features_path" env:"PIPELINE_KEYED_FEATURES_PATH" env-default:"data/OpenGNT_keyedFeatures.csv"`
	VersesPath        string `yaml:"verses_path"         env:"PIPELINE_VERSES_PATH"         env-default:"data/verses.json"`
	NewVersesPath     string `yaml:"new_verses_path"     env:"PIPELINE_NEW_VERSES_PATH"     env-default:"data/new_verses.json"`
	SelectionPath     string `yaml:"selection_path"      env:"PIPELINE_SELECTION_PATH"      env-default:"data/verse_selection.txt"`
	DryRun            bool   `yaml:"dry_run"             env:"PIPELINE_DRY_RUN"             env-default:"false"`
}

// FetchConfig holds translation-fetch settings.
type FetchConfig struct {
	BaseURL    string        `yaml:"base_url"    env:"FETCH_BASE_URL"    env-default:"https://bible-api.com"`
	Timeout    time.Duration `yaml:"timeout"     env:"FETCH_TIMEOUT"     env-default:"10s"`
	Delay      time.Duration `yaml:"delay"       env:"FETCH_DELAY"       env-default:"2100ms"`
	MaxUpdates int           `yaml:"max_updates" env:"FETCH_MAX_UPDATES" env-default:"250"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
