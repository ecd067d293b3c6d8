package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/sandwich-unwrapped/internal/warehouse"
)

func testLoaderConfig(files ...string) aconfig.Config {
	return aconfig.Config{
		EnvPrefix: "SANDWICH",
		SkipFlags: true,
		SkipFiles: len(files) == 0,
		Files:     files,
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	}
}

func setSnowflakeEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SNOWFLAKE_USER", "analyst")
	t.Setenv("SNOWFLAKE_PASSWORD", "secret")
	t.Setenv("SNOWFLAKE_ACCOUNT", "xy12345.us-east-1")
	t.Setenv("SNOWFLAKE_WAREHOUSE", "COMPUTE_WH")
	t.Setenv("SNOWFLAKE_DATABASE", "SANDWICH_DB")
	t.Setenv("SNOWFLAKE_SCHEMA", "public")
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/sandwich")
	setSnowflakeEnv(t)

	cfg, err := loadConfig(testLoaderConfig())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8000", cfg.Addr)
	assert.Equal(t, "postgres://localhost/sandwich", cfg.DatabaseURL)
	assert.Equal(t, warehouse.DriverSnowflake, cfg.Warehouse.Driver)
	assert.Equal(t, "analyst", cfg.Warehouse.User)
	assert.Equal(t, "COMPUTE_WH", cfg.Warehouse.Warehouse)
	assert.Equal(t, "public", cfg.Warehouse.Schema)
	assert.Equal(t, 5, cfg.Inspect.SampleRows)
	assert.Equal(t, 100, cfg.RateLimit.Max)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, []string{"*"}, cfg.CORS.Origins)
	assert.Equal(t, 15*time.Second, cfg.Graceful.ShutdownTimeout)
}

func TestLoadConfig_PrefixedWins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://platform/db")
	t.Setenv("SANDWICH_DATABASE_URL", "postgres://explicit/db")
	t.Setenv("SANDWICH_WAREHOUSE_USER", "svc_reporting")
	setSnowflakeEnv(t)

	cfg, err := loadConfig(testLoaderConfig())
	require.NoError(t, err)
	assert.Equal(t, "postgres://explicit/db", cfg.DatabaseURL)
	assert.Equal(t, "svc_reporting", cfg.Warehouse.User)
	assert.Equal(t, "secret", cfg.Warehouse.Password)
}

func TestLoadConfig_Port(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/sandwich")
	t.Setenv("PORT", "9090")
	setSnowflakeEnv(t)

	cfg, err := loadConfig(testLoaderConfig())
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.Addr)
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr: 127.0.0.1:8001
database_url: postgres://yaml/db
warehouse:
  driver: sqlite
  path: dev.db
inspect:
  sample_rows: 2
`), 0o600))

	cfg, err := loadConfig(testLoaderConfig(path))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8001", cfg.Addr)
	assert.Equal(t, warehouse.DriverSQLite, cfg.Warehouse.Driver)
	assert.Equal(t, "dev.db", cfg.Warehouse.Path)
	assert.Equal(t, 2, cfg.Inspect.SampleRows)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "MissingDatabaseURL",
			env:     map[string]string{"SANDWICH_WAREHOUSE_DRIVER": "sqlite"},
			wantErr: "database URL is required",
		},
		{
			name:    "MissingSnowflakeCredentials",
			env:     map[string]string{"DATABASE_URL": "postgres://localhost/db"},
			wantErr: "snowflake settings missing",
		},
		{
			name: "UnknownDriver",
			env: map[string]string{
				"DATABASE_URL":              "postgres://localhost/db",
				"SANDWICH_WAREHOUSE_DRIVER": "bigquery",
			},
			wantErr: "unsupported warehouse driver",
		},
		{
			name: "CredentialsWithWildcardOrigin",
			env: map[string]string{
				"DATABASE_URL":                    "postgres://localhost/db",
				"SANDWICH_WAREHOUSE_DRIVER":       "sqlite",
				"SANDWICH_WAREHOUSE_PATH":         "dev.db",
				"SANDWICH_CORS_ALLOW_CREDENTIALS": "true",
			},
			wantErr: "credentials cannot be allowed for the wildcard origin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"DATABASE_URL", "SNOWFLAKE_USER", "SNOWFLAKE_PASSWORD", "SNOWFLAKE_ACCOUNT"} {
				t.Setenv(key, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := loadConfig(testLoaderConfig())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigValidate_CORS(t *testing.T) {
	base := Config{
		DatabaseURL: "postgres://localhost/db",
		Warehouse:   warehouse.Config{Driver: warehouse.DriverSQLite, Path: "dev.db"},
	}

	cfg := base
	cfg.CORS = CORSConfig{Origins: []string{"https://app.example.com", "*"}, AllowCredentials: true}
	require.Error(t, cfg.Validate())

	cfg.CORS = CORSConfig{Origins: []string{"https://app.example.com"}, AllowCredentials: true}
	require.NoError(t, cfg.Validate())

	cfg.CORS = CORSConfig{Origins: []string{"*"}}
	require.NoError(t, cfg.Validate())
}
