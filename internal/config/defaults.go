package config

// Default creates a config with every value set to its default.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills zero values with working defaults so a partial YAML
// file still yields a runnable configuration.
func (c *Config) ApplyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "127.0.0.1"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8950
	}
	if c.Catalog.Path == "" {
		c.Catalog.Path = "catalog.json"
	}
	if c.Search.DefaultLimit == 0 {
		c.Search.DefaultLimit = 20
	}
	if c.Search.MaxLimit == 0 {
		c.Search.MaxLimit = 100
	}
	if c.Search.DefaultTopK == 0 {
		c.Search.DefaultTopK = 10
	}
	c.Ranking.ApplyDefaults()
}
