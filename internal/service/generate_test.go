package service

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyagen/tvm3u/internal/config"
	"github.com/voyagen/tvm3u/internal/converter"
	"github.com/voyagen/tvm3u/internal/logger"
)

const sampleChannels = `{
  "code": 200,
  "data": [
    {"name": "CNN!", "url": "http://example.com/cnn", "group": "News"},
    {"channelName": "ESPN (HD)", "urls": ["https://example.com/espn", "https://backup/espn"], "category": "Sports", "icon": "https://example.com/espn.png"},
    {"title": "Broken", "url": "ftp://example.com/broken"}
  ]
}`

func setupDir(t *testing.T, content string) *config.Config {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "m3u-generator")
	require.NoError(t, os.Mkdir(dir, 0o755))
	if content != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultInput), []byte(content), 0o644))
	}
	cfg := config.Default()
	cfg.Dir = dir
	return cfg
}

func TestGenerate(t *testing.T) {
	cfg := setupDir(t, sampleChannels)

	sum, err := Generate(cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, converter.Result{Valid: 2, Total: 3}, sum.Result)
	assert.Equal(t, filepath.Join(filepath.Dir(cfg.Dir), "tv.m3u"), sum.Output)

	want := "#EXTM3U\n" +
		"#EXTINF:-1 group-title=\"News\",CNN\n" +
		"http://example.com/cnn\n" +
		"#EXTINF:-1 tvg-logo=\"https://example.com/espn.png\" group-title=\"Sports\",ESPN HD\n" +
		"https://example.com/espn\n"
	got, err := os.ReadFile(sum.Output)
	require.NoError(t, err)
	assert.Equal(t, want, string(got))

	require.NotNil(t, sum.Stats)
	assert.Equal(t, int64(len(want)), sum.Stats.Size)
	assert.Equal(t, 5, sum.Stats.Lines)
	assert.Equal(t, 2, sum.Stats.Entries)
}

func TestGenerateMissingInput(t *testing.T) {
	cfg := setupDir(t, "")

	var buf bytes.Buffer
	sum, err := Generate(cfg, logger.New(&buf, false))
	assert.Nil(t, sum)
	assert.ErrorIs(t, err, converter.ErrMissingInputFile)
	assert.Contains(t, buf.String(), "input file does not exist")
	assert.Contains(t, buf.String(), "current working directory")
}

func TestGenerateNoChannels(t *testing.T) {
	cfg := setupDir(t, `{"foo": "bar"}`)

	_, err := Generate(cfg, zerolog.Nop())
	assert.ErrorIs(t, err, converter.ErrNoChannelData)
	assert.NoFileExists(t, cfg.OutputPath())
}

func TestGenerateInvalidConfig(t *testing.T) {
	_, err := Generate(&config.Config{Input: "a.json"}, zerolog.Nop())
	assert.ErrorIs(t, err, config.ErrMissingOutput)
}

func TestGenerateInlineLogoOverOneMiB(t *testing.T) {
	logo := "data:image/png;base64," + strings.Repeat("A", 1100*1024)
	cfg := setupDir(t, `{"data":[{"name":"Inline","url":"http://example.com/inline","logo":"`+logo+`"}]}`)

	sum, err := Generate(cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, converter.Result{Valid: 1, Total: 1}, sum.Result)

	require.NotNil(t, sum.Stats)
	info, err := os.Stat(sum.Output)
	require.NoError(t, err)
	assert.Equal(t, info.Size(), sum.Stats.Size)
	assert.Equal(t, 3, sum.Stats.Lines)
	assert.Equal(t, 1, sum.Stats.Entries)
}
