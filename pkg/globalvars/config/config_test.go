package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()

	assert.Equal(t, []string{"getter", "viewer"}, s.Expire.OnSet)
	assert.Equal(t, []string{"getter", "viewer"}, s.Expire.OnRemove)
	assert.Equal(t, []string{"getter", "viewer"}, s.Expire.OnClear)
	assert.Equal(t, DefaultMissingMessage, s.Getter.MissingMessage)
	assert.Equal(t, "null", s.NullTypeName)
	assert.False(t, s.Viewer.IncludeSchemas)
	assert.False(t, s.Observability.Metrics)
	assert.False(t, s.Observability.Tracing)
	assert.NoError(t, s.Validate())
}

func TestLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"WARN", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			s := Default()
			s.Observability.LogLevel = tt.in
			got, err := s.Level()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("empty missing message", func(t *testing.T) {
		s := Default()
		s.Getter.MissingMessage = "  "
		assert.ErrorContains(t, s.Validate(), "getter.missing_message")
	})

	t.Run("empty null type name", func(t *testing.T) {
		s := Default()
		s.NullTypeName = ""
		assert.ErrorContains(t, s.Validate(), "null_type_name")
	})

	t.Run("empty kind", func(t *testing.T) {
		s := Default()
		s.Expire.OnClear = []string{"getter", ""}
		assert.ErrorContains(t, s.Validate(), "expire.on_clear")
	})

	t.Run("reports all problems", func(t *testing.T) {
		s := Default()
		s.NullTypeName = ""
		s.Observability.LogLevel = "loud"
		err := s.Validate()
		require.Error(t, err)
		assert.ErrorContains(t, err, "null_type_name")
		assert.ErrorContains(t, err, "log_level")
	})
}

func TestFromYAML(t *testing.T) {
	t.Run("overlays defaults", func(t *testing.T) {
		s, err := FromYAML([]byte(`
expire:
  on_set: [getter]
getter:
  missing_message: nothing here
observability:
  metrics: true
  log_level: debug
`))
		require.NoError(t, err)

		assert.Equal(t, []string{"getter"}, s.Expire.OnSet)
		assert.Equal(t, []string{"getter", "viewer"}, s.Expire.OnClear)
		assert.Equal(t, "nothing here", s.Getter.MissingMessage)
		assert.Equal(t, "null", s.NullTypeName)
		assert.True(t, s.Observability.Metrics)
		assert.False(t, s.Observability.Tracing)
	})

	t.Run("empty list disables expiry", func(t *testing.T) {
		s, err := FromYAML([]byte("expire:\n  on_set: []\n"))
		require.NoError(t, err)
		assert.Empty(t, s.Expire.OnSet)
	})

	t.Run("empty document yields defaults", func(t *testing.T) {
		s, err := FromYAML(nil)
		require.NoError(t, err)
		assert.Equal(t, Default(), s)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := FromYAML([]byte("expire: [unclosed"))
		assert.ErrorContains(t, err, "parse yaml")
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := FromYAML([]byte("observability:\n  log_level: chatty\n"))
		assert.ErrorContains(t, err, "invalid config")
	})
}

func TestFromJSON(t *testing.T) {
	s, err := FromJSON([]byte(`{"viewer": {"include_schemas": true}, "null_type_name": "none"}`))
	require.NoError(t, err)
	assert.True(t, s.Viewer.IncludeSchemas)
	assert.Equal(t, "none", s.NullTypeName)
	assert.Equal(t, DefaultMissingMessage, s.Getter.MissingMessage)

	s, err = FromJSON([]byte("  "))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)

	_, err = FromJSON([]byte(`{"viewer":`))
	assert.ErrorContains(t, err, "parse json")
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "globalvars.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("null_type_name: nil\n"), 0o600))
	s, err := FromFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "nil", s.NullTypeName)

	ymlPath := filepath.Join(dir, "globalvars.YML")
	require.NoError(t, os.WriteFile(ymlPath, []byte("viewer:\n  include_schemas: true\n"), 0o600))
	s, err = FromFile(ymlPath)
	require.NoError(t, err)
	assert.True(t, s.Viewer.IncludeSchemas)

	jsonPath := filepath.Join(dir, "globalvars.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"observability":{"tracing":true}}`), 0o600))
	s, err = FromFile(jsonPath)
	require.NoError(t, err)
	assert.True(t, s.Observability.Tracing)

	tomlPath := filepath.Join(dir, "globalvars.toml")
	require.NoError(t, os.WriteFile(tomlPath, nil, 0o600))
	_, err = FromFile(tomlPath)
	assert.ErrorContains(t, err, "unsupported config file extension")

	_, err = FromFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "read config file")
}
