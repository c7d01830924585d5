package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/siteconf/internal/config"
	derrors "git.home.luguber.info/inful/siteconf/internal/errors"
)

func testEnv(t *testing.T) (*Global, *CLI, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	root := &CLI{Config: filepath.Join(t.TempDir(), "siteconf.yaml")}
	return &Global{Stdout: &buf}, root, &buf
}

func TestInitThenCheck(t *testing.T) {
	g, root, out := testEnv(t)

	require.NoError(t, (&InitCmd{}).Run(g, root))
	assert.Contains(t, out.String(), "initialized successfully")
	assert.FileExists(t, root.Config)

	err := (&InitCmd{}).Run(g, root)
	require.Error(t, err, "existing file without --force")
	require.NoError(t, (&InitCmd{Force: true}).Run(g, root))

	out.Reset()
	require.NoError(t, (&CheckCmd{Format: "json"}).Run(g, root))
	var report map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, true, report["valid"])
	assert.Equal(t, config.Default().Snapshot(), report["snapshot"])
}

func TestCheck_InvalidConfig(t *testing.T) {
	g, root, out := testEnv(t)
	require.NoError(t, os.WriteFile(root.Config, []byte("title: Velox\nlocales:\n  zh-cn/:\n    lang: zh-CN\n"), 0o644))

	err := (&CheckCmd{}).Run(g, root)
	require.Error(t, err)
	assert.True(t, derrors.IsCategory(err, derrors.CategoryValidation))
	assert.Equal(t, 2, derrors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))
	assert.Contains(t, out.String(), "Site configuration is invalid")
}

func TestCheck_MetricsTextfile(t *testing.T) {
	g, root, _ := testEnv(t)
	require.NoError(t, config.WriteExample(root.Config, false))
	textfile := filepath.Join(t.TempDir(), "siteconf.prom")

	require.NoError(t, (&CheckCmd{MetricsTextfile: textfile}).Run(g, root))
	data, err := os.ReadFile(textfile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `siteconf_loads_total{result="success"} 1`)
	assert.Contains(t, string(data), "siteconf_locales 2")
}

func TestEmit(t *testing.T) {
	g, root, out := testEnv(t)
	require.NoError(t, config.WriteExample(root.Config, false))

	require.NoError(t, (&EmitCmd{}).Run(g, root))
	var generated map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &generated))
	assert.Equal(t, "Bottle", generated["title"])

	target := filepath.Join(t.TempDir(), ".vuepress", "config.js")
	require.NoError(t, (&EmitCmd{Output: target}).Run(g, root))
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "module.exports = {")
}

func TestEmit_Builtin(t *testing.T) {
	g, root, out := testEnv(t)

	require.NoError(t, (&EmitCmd{Builtin: true, Format: "yaml"}).Run(g, root))
	assert.Contains(t, out.String(), "\ntitle: Bottle\n")
}

func TestEmit_Errors(t *testing.T) {
	g, root, _ := testEnv(t)

	err := (&EmitCmd{}).Run(g, root)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfiguration)

	err = (&EmitCmd{Builtin: true, Format: "toml"}).Run(g, root)
	assert.Error(t, err)
}

func TestShow(t *testing.T) {
	g, root, out := testEnv(t)

	require.NoError(t, (&ShowCmd{Builtin: true}).Run(g, root))
	s := out.String()
	assert.Contains(t, s, "locale /zh-cn/  zh-CN (")
	assert.Contains(t, s, "Chinese")
	assert.Contains(t, s, "-> /zh-cn/guide/")
	assert.Contains(t, s, "@vuepress/plugin-back-to-top (enabled)")
}

func TestAfterApply(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	require.NoError(t, (&CLI{LogLevel: "WARN", LogFormat: "json"}).AfterApply())
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelInfo))

	require.NoError(t, (&CLI{LogLevel: "error", Verbose: true}).AfterApply())
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))

	assert.Error(t, (&CLI{LogLevel: "loud"}).AfterApply())
	assert.Error(t, (&CLI{LogFormat: "xml"}).AfterApply())
}
