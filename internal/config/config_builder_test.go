package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"dario.cat/mergo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mergeAll mirrors the merge step of configBuilder.build for a fixed list of
// sources, without touching process-global flag state.
func mergeAll(t *testing.T, sources ...*StructuredConfig) *StructuredConfig {
	t.Helper()

	config := new(StructuredConfig)
	for _, cfg := range sources {
		require.NoError(t, mergo.Merge(config, cfg))
	}
	return config
}

func TestMergePriority_FirstSourceWins(t *testing.T) {
	envCfg := &StructuredConfig{
		App: App{TokenSignKey: "from-env"},
	}
	jsonCfg := &StructuredConfig{
		App:    App{TokenSignKey: "from-json", TokenIssuer: "json_issuer"},
		Server: Server{HTTPAddress: "127.0.0.1:8080"},
	}

	merged := mergeAll(t, envCfg, jsonCfg, defaultConfig())

	assert.Equal(t, "from-env", merged.App.TokenSignKey)
	assert.Equal(t, "json_issuer", merged.App.TokenIssuer)
	assert.Equal(t, "127.0.0.1:8080", merged.Server.HTTPAddress)
}

func TestMergePriority_DefaultsFillGaps(t *testing.T) {
	merged := mergeAll(t, &StructuredConfig{}, defaultConfig())

	assert.Equal(t, "0.0.0.0:6217", merged.Server.HTTPAddress)
	assert.Equal(t, "auth_service", merged.App.TokenIssuer)
	assert.Equal(t, time.Hour, merged.App.TokenDuration)
	assert.Equal(t, "tokens.db", merged.Storage.Tokens.SQLitePath)
	assert.Equal(t, 3, merged.Providers.RetryCount)
	assert.Equal(t, time.Minute, merged.Workers.CleanupInterval)
}

func TestParseJSON_ReadsAllSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"app": {"token_sign_key": "k", "token_duration": "45m", "version": "1.2.3"},
		"server": {"http_address": "0.0.0.0:7000", "request_timeout": "20s"},
		"storage": {"db": {"dsn": "postgres://db"}, "tokens": {"redis_url": "redis://r"}},
		"providers": {"facebook": {"app_id": "id", "app_secret": "sec"}, "retry_count": 2},
		"workers": {"cleanup_interval": "90s"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "k", cfg.App.TokenSignKey)
	assert.Equal(t, 45*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "0.0.0.0:7000", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://db", cfg.Storage.DB.DSN)
	assert.Equal(t, "redis://r", cfg.Storage.Tokens.RedisURL)
	assert.Equal(t, "id", cfg.Providers.Facebook.AppID)
	assert.Equal(t, 2, cfg.Providers.RetryCount)
	assert.Equal(t, 90*time.Second, cfg.Workers.CleanupInterval)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := defaultConfig()
	valid.App.TokenSignKey = "secret"
	valid.Storage.DB.DSN = "postgres://db"
	require.NoError(t, valid.validate())

	noKey := defaultConfig()
	noKey.Storage.DB.DSN = "postgres://db"
	assert.ErrorIs(t, noKey.validate(), ErrNoTokenSignKey)

	noDSN := defaultConfig()
	noDSN.App.TokenSignKey = "secret"
	assert.ErrorIs(t, noDSN.validate(), ErrNoDatabaseDSN)

	badDuration := defaultConfig()
	badDuration.App.TokenSignKey = "secret"
	badDuration.Storage.DB.DSN = "postgres://db"
	badDuration.App.TokenDuration = 0
	assert.ErrorIs(t, badDuration.validate(), ErrInvalidTokenDuration)
}

func TestMask(t *testing.T) {
	assert.Equal(t, "", mask(""))
	assert.Equal(t, "***", mask("short"))
	assert.Equal(t, "sup...ret", mask("super-secret"))
}
