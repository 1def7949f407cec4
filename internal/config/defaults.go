package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Storage.DatabasePath == "" {
		cfg.Storage.DatabasePath = "/usr/local/var/careconnect/data/services.db"
	}
	if cfg.Embedding.BaseURL == "" {
		cfg.Embedding.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Embedding.Model == "" {
		cfg.Embedding.Model = "text-embedding-3-small"
	}
	if cfg.Embedding.Dimensions == 0 {
		cfg.Embedding.Dimensions = 1536
	}
	if cfg.Embedding.CacheSize == 0 {
		cfg.Embedding.CacheSize = 10000
	}
	if cfg.Search.DefaultLimit == 0 {
		cfg.Search.DefaultLimit = 10
	}
	if cfg.Search.MaxLimit == 0 {
		cfg.Search.MaxLimit = 100
	}
	if cfg.Search.ConfidenceThreshold == 0 {
		cfg.Search.ConfidenceThreshold = 40
	}
	if cfg.Search.MaterialityThreshold == 0 {
		cfg.Search.MaterialityThreshold = 30
	}
	if cfg.Search.RescueThreshold == 0 {
		cfg.Search.RescueThreshold = 25
	}
	if cfg.Search.SimilarityFloor == 0 {
		cfg.Search.SimilarityFloor = 0.01
	}
	if cfg.Search.ScoreGap == 0 {
		cfg.Search.ScoreGap = 50
	}
	cfg.Ranking.ApplyDefaults()
}
