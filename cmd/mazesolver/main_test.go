package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/config"
	"github.com/katalvlaran/mazepath/pathsearch"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Height, cfg.Width = 9, 11
	cfg.Seed, cfg.HasSeed = 5, true
	cfg.FrameDelay = 0
	return cfg
}

func TestExecute_FinalOnly(t *testing.T) {
	log, hook := test.NewNullLogger()
	var out bytes.Buffer

	code := execute(testConfig(), log, &out)
	require.Equal(t, exitOK, code)

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "Generated Maze\n"))
	assert.Equal(t, 1, strings.Count(text, pathsearch.TitleSolved+"\n"))
	assert.NotContains(t, text, pathsearch.TitleSolving)
	// Title lines plus two dumps of nine rows each.
	assert.Equal(t, 2+2*9, strings.Count(text, "\n"))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "maze solved", hook.LastEntry().Message)
}

func TestExecute_Animate(t *testing.T) {
	log, _ := test.NewNullLogger()
	var out bytes.Buffer
	cfg := testConfig()
	cfg.Animate = true

	require.Equal(t, exitOK, execute(cfg, log, &out))
	assert.Greater(t, strings.Count(out.String(), pathsearch.TitleSolving+"\n"), 1)
	assert.Contains(t, out.String(), pathsearch.TitleSolved+"\n")
}

func TestExecute_WritesPNG(t *testing.T) {
	log, _ := test.NewNullLogger()
	cfg := testConfig()
	cfg.CellPixels = 2
	cfg.PNGPath = filepath.Join(t.TempDir(), "maze.png")

	require.Equal(t, exitOK, execute(cfg, log, &bytes.Buffer{}))

	f, err := os.Open(cfg.PNGPath)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 22, img.Bounds().Dx())
	assert.Equal(t, 18, img.Bounds().Dy())
}

func TestExecute_PNGFailure(t *testing.T) {
	log, _ := test.NewNullLogger()
	cfg := testConfig()
	cfg.PNGPath = filepath.Join(t.TempDir(), "no", "such", "dir.png")
	assert.Equal(t, exitFailed, execute(cfg, log, &bytes.Buffer{}))
}

func TestExecute_InvalidDimensions(t *testing.T) {
	log, hook := test.NewNullLogger()
	cfg := testConfig()
	cfg.Height = 8
	assert.Equal(t, exitFailed, execute(cfg, log, &bytes.Buffer{}))
	assert.Equal(t, "generating maze", hook.LastEntry().Message)
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestExecute_OutputFailure(t *testing.T) {
	log, _ := test.NewNullLogger()
	assert.Equal(t, exitFailed, execute(testConfig(), log, brokenWriter{}))
}
