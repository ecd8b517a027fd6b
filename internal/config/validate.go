package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Pipeline.VocabPath == "" {
		return fmt.Errorf("pipeline.vocab_path must not be empty")
	}
	if c.Pipeline.VersesPath == "" {
		return fmt.Errorf("pipeline.verses_path must not be empty")
	}

	if c.Fetch.BaseURL == "" {
		return fmt.Errorf("fetch.base_url must not be empty")
	}
	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("fetch.timeout must be > 0 (got %v)", c.Fetch.Timeout)
	}
	if c.Fetch.Delay < 0 {
		return fmt.Errorf("fetch.delay must be >= 0 (got %v)", c.Fetch.Delay)
	}
	if c.Fetch.MaxUpdates < 0 {
		return fmt.Errorf("fetch.max_updates must be >= 0 (got %d)", c.Fetch.MaxUpdates)
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}
