package config

const (
	// DefaultInstrument is used when the host does not name one.
	DefaultInstrument = "EURUSD"

	// DefaultPeriod is the chart period assumed without configuration.
	DefaultPeriod = "m5"
)

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Instrument: DefaultInstrument,
		Period:     DefaultPeriod,
		Output: OutputConfig{
			Logging:  true,
			LogLevel: "info",
		},
	}
}
