package picojson

// IntWidth selects the signed integer type integer-shaped lexemes are
// checked against.
type IntWidth int

const (
	// IntWide checks against int64. This is the default.
	IntWide IntWidth = iota
	// IntNarrow checks against int32.
	IntNarrow
	// IntTiny checks against int8.
	IntTiny
)

func (w IntWidth) bits() int {
	switch w {
	case IntNarrow:
		return 32
	case IntTiny:
		return 8
	default:
		return 64
	}
}

// FloatMode selects how float-shaped lexemes (containing '.', 'e', or 'E')
// are handled. FloatDisabled is the default,
// matching the Rust implementation's feature-flag default.
type FloatMode int

const (
	// FloatDisabled reports FloatUnparsed; only the raw lexeme is usable.
	FloatDisabled FloatMode = iota
	// FloatEnabled parses float-shaped lexemes as binary64.
	FloatEnabled
	// FloatError rejects any float-shaped lexeme with ErrFloatNotAllowed.
	FloatError
	// FloatSkip reports FloatSkipped; only the raw lexeme is usable.
	FloatSkip
	// FloatTruncate truncates simple decimals to their integer part and
	// rejects scientific notation outright.
	FloatTruncate
)

// Config holds the build-time parsing choices, reified as a runtime
// struct validated once at parser construction.
type Config struct {
	IntWidth  IntWidth
	FloatMode FloatMode
}

// Option configures a Config via the functional-options pattern.
type Option func(*Config)

// WithIntWidth selects the integer width used to classify integer-shaped
// lexemes.
func WithIntWidth(w IntWidth) Option {
	return func(c *Config) { c.IntWidth = w }
}

// WithFloatMode selects how float-shaped lexemes are handled.
func WithFloatMode(m FloatMode) Option {
	return func(c *Config) { c.FloatMode = m }
}

// DefaultConfig returns the spec's default: wide (int64) integers, floats
// disabled.
func DefaultConfig() Config {
	return Config{IntWidth: IntWide, FloatMode: FloatDisabled}
}

func newConfig(opts []Option) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.IntWidth < IntWide || cfg.IntWidth > IntTiny {
		return cfg, simpleErr(ErrKindInvalidConfig, 0)
	}
	if cfg.FloatMode < FloatDisabled || cfg.FloatMode > FloatTruncate {
		return cfg, simpleErr(ErrKindInvalidConfig, 0)
	}
	return cfg, nil
}
