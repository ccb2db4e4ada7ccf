package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/querysandbox/config"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.config")
	defer teardown()
	//
	conf := config.New()
	assert.Equal(t, "Playground *", conf.Selector())
	assert.Equal(t, "", conf.Playgrounds())
	assert.True(t, conf.Watch())
	assert.Equal(t, "auto", conf.Color())
	assert.Equal(t, "go", conf.GetString("tracing.adapter"))
	assert.Equal(t, "Error", conf.GetString("tracelevel.root"))
	assert.NoError(t, conf.Validate())
}

func TestLoadFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.config")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "sandbox.yaml")
	err := os.WriteFile(path, []byte(`
selector: "#innermost"
watch: false
color: ascii
tracelevel:
  sandbox:
    query: Debug
`), 0o600)
	require.NoError(t, err)
	conf := config.New()
	require.NoError(t, conf.Load(path))
	assert.Equal(t, "#innermost", conf.Selector())
	assert.False(t, conf.Watch())
	assert.Equal(t, "ascii", conf.Color())
	assert.Equal(t, "Debug", conf.GetString("tracelevel.sandbox.query"))
	assert.True(t, conf.IsSet("tracelevel.sandbox.query"))
	//
	err = config.New().Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "an explicit configuration file must exist")
}

func TestEnvAndFlags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sandbox.config")
	defer teardown()
	//
	t.Setenv("QUERYSANDBOX_STYLESHEET", "my.css")
	conf := config.New()
	assert.Equal(t, "my.css", conf.Stylesheet())
	//
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("selector", "", "initial selector")
	flags.String("color", "auto", "color profile")
	require.NoError(t, conf.BindFlags(flags, "selector", "color", "no-such-flag"))
	require.NoError(t, flags.Parse([]string{"--color", "sepia"}))
	assert.Equal(t, "Playground *", conf.Selector(), "unchanged flags keep the default")
	assert.Equal(t, "sepia", conf.Color())
	assert.ErrorIs(t, conf.Validate(), config.ErrUnknownColorProfile)
}
