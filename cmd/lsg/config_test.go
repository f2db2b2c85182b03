package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Precedence(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "lsg.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("log-format: json\nlog-level: warn\n"), 0o644))
	t.Setenv("LSG_LOG_LEVEL", "debug")

	root := newRootCommand()
	require.NoError(t, root.ParseFlags([]string{"--config", cfg}))
	v := viper.New()
	require.NoError(t, loadConfig(v, root))

	assert.Equal(t, "json", v.GetString("log-format"), "file beats flag default")
	assert.Equal(t, "debug", v.GetString("log-level"), "env beats file")
	assert.Equal(t, "", v.GetString("log-file"))
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	root := newRootCommand()
	require.NoError(t, root.ParseFlags([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}))

	assert.Error(t, loadConfig(viper.New(), root))
}
