package entity

// ConfigKeyInfo documents one key of config.toml for `dockyard config keys`.
type ConfigKeyInfo struct {
	// Key is the dotted path, e.g. "layout.gesture_policy".
	Key string `json:"key"`

	// Type is the Go type name of the value.
	Type string `json:"type"`

	Default     string `json:"default"`
	Description string `json:"description"`

	// Env is the environment variable that overrides the key.
	Env string `json:"env"`

	// Values lists the accepted values of an enum key.
	Values []string `json:"values,omitempty"`

	// Range is the accepted numeric range, e.g. "0-60000".
	Range string `json:"range,omitempty"`

	// Section groups keys in listings ("Logging", "Layout", ...).
	Section string `json:"section"`
}
