package config

type Config interface {
	Decimals() int
	Unit() string
	Color() bool

	SetDecimals(int)
	SetUnit(string)
	SetColor(bool)

	// Load reads the configuration from the source.
	Load() error
	// Save saves the configuration to the source.
	Save() error
}
