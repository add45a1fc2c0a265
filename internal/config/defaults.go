package config

// DefaultConfigPath is where the CLI looks for its config when no -config flag is given.
const DefaultConfigPath = "/usr/local/etc/kura/config.yaml"

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Storage.DatabasePath == "" {
		cfg.Storage.DatabasePath = "/usr/local/var/kura/data/db/index.db"
	}
	if cfg.Storage.ObjectsPath == "" {
		cfg.Storage.ObjectsPath = "/usr/local/var/kura/data/objects"
	}
	if cfg.Index.Type == "" {
		cfg.Index.Type = "sqlite"
	}
	if cfg.Ingest.ImportDir == "" {
		cfg.Ingest.ImportDir = "/usr/local/var/kura/import"
	}
	if cfg.Ingest.Workers <= 0 {
		cfg.Ingest.Workers = 4
	}
	// Recursive defaults to true when unset (nil).
	if len(cfg.Watch.Directories) > 0 && cfg.Watch.Recursive == nil {
		t := true
		cfg.Watch.Recursive = &t
	}
}
