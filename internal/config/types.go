package config

// Config is the top-level configuration for an algotest host.
type Config struct {
	// Instrument and Period describe the host chart the run is attached to.
	Instrument string `yaml:"instrument,omitempty"`
	Period     string `yaml:"period,omitempty"`

	// DataPath points at a bar file for the simulated feed. Empty means
	// the feed synthesizes its own series.
	DataPath string `yaml:"dataPath,omitempty"`

	// StartBar is the first bar index at which runs may trigger.
	StartBar int `yaml:"startBar,omitempty"`

	// EveryTick reruns the plan on every bar instead of once.
	EveryTick bool `yaml:"everyTick,omitempty"`

	// DefaultTimeout is applied to units that declare none, e.g. "250ms".
	DefaultTimeout string `yaml:"defaultTimeout,omitempty"`

	// FailFast stops a run after the first bad result.
	FailFast bool `yaml:"failFast,omitempty"`

	Filter FilterConfig `yaml:"filter,omitempty"`
	Output OutputConfig `yaml:"output,omitempty"`
}

// FilterConfig narrows discovery.
type FilterConfig struct {
	// Namespace keeps only suites whose namespace starts with this prefix.
	Namespace string `yaml:"namespace,omitempty"`
	// Name keeps only suites whose name contains this fragment.
	Name string `yaml:"name,omitempty"`
}

// OutputConfig controls what a run emits.
type OutputConfig struct {
	// Logging toggles live console output. The transcript is captured
	// regardless.
	Logging bool `yaml:"logging"`
	// Annotate forwards results to the host's chart annotator.
	Annotate bool `yaml:"annotate,omitempty"`
	// Verbose adds expected-outcome notes and fault traces.
	Verbose bool `yaml:"verbose,omitempty"`
	// ReportDir receives a JSON report per run when set.
	ReportDir string `yaml:"reportDir,omitempty"`
	// LogLevel filters the diagnostic log: debug, info, warn or error.
	LogLevel string `yaml:"logLevel,omitempty"`
}
