package config

// Masked returns a loggable view of the configuration with secret values
// reduced to their first and last three characters. Intended for the debug
// dump emitted at startup.
func (cfg *StructuredConfig) Masked() map[string]any {
	return map[string]any{
		"app": map[string]any{
			"token_sign_key": mask(cfg.App.TokenSignKey),
			"token_issuer":   cfg.App.TokenIssuer,
			"token_duration": cfg.App.TokenDuration.String(),
			"log_level":      cfg.App.LogLevel,
			"version":        cfg.App.Version,
		},
		"server": map[string]any{
			"http_address":    cfg.Server.HTTPAddress,
			"grpc_address":    cfg.Server.GRPCAddress,
			"request_timeout": cfg.Server.RequestTimeout.String(),
		},
		"storage": map[string]any{
			"db_dsn":      mask(cfg.Storage.DB.DSN),
			"redis_url":   mask(cfg.Storage.Tokens.RedisURL),
			"sqlite_path": cfg.Storage.Tokens.SQLitePath,
		},
		"providers": map[string]any{
			"facebook_app_id":     mask(cfg.Providers.Facebook.AppID),
			"facebook_app_secret": mask(cfg.Providers.Facebook.AppSecret),
			"twitter_oauth2":      cfg.Providers.Twitter.OAuth2,
			"request_timeout":     cfg.Providers.RequestTimeout.String(),
			"retry_count":         cfg.Providers.RetryCount,
			"retry_wait":          cfg.Providers.RetryWait.String(),
		},
		"workers": map[string]any{
			"cleanup_interval": cfg.Workers.CleanupInterval.String(),
		},
	}
}

// mask hides the middle of a secret, keeping just enough of it to recognise
// which value is configured. Short secrets are fully masked.
func mask(val string) string {
	if val == "" {
		return ""
	}
	if len(val) <= 6 {
		return "***"
	}

	return val[:3] + "..." + val[len(val)-3:]
}
