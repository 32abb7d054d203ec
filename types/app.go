package types

// StorageConfig locates the directory under which persisted artifacts,
// including logs, are written.
type StorageConfig struct {
	Root string `toml:"root" yaml:"root" validate:"required"`
}

type AppConfig struct {
	Storage StorageConfig `toml:"storage" yaml:"storage"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
}
