package static

// Config holds static serving configuration with environment variable support.
type Config struct {
	Root         string   `env:"STATIC_ROOT" envDefault:"."`
	Index        string   `env:"STATIC_INDEX" envDefault:"index.html"`
	ExcludePaths []string `env:"STATIC_EXCLUDE_PATHS" envSeparator:","`
	StripPrefix  string   `env:"STATIC_STRIP_PREFIX"`
}

// Options converts the configuration into SPA options.
func (c Config) Options() []SPAOption {
	opts := make([]SPAOption, 0, 3)
	if c.Index != "" {
		opts = append(opts, WithIndex(c.Index))
	}
	if len(c.ExcludePaths) > 0 {
		opts = append(opts, WithExcludePaths(c.ExcludePaths...))
	}
	if c.StripPrefix != "" {
		opts = append(opts, WithStripPrefix(c.StripPrefix))
	}
	return opts
}
