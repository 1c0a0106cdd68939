package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-showcase/config"
	"github.com/Carmen-Shannon/oxy-showcase/engine/loader"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRunTraceCSV(t *testing.T) {
	path := writeScript(t, "name: walk\ntour: apartment\nframes: 30\nevents: [{frame: 0, kind: wheel, delta: 100, repeat: 10}]\n")

	var out bytes.Buffer
	err := runTrace(&out, config.Default(), traceOptions{scripts: []string{path, path}, format: "csv", workers: 2})
	require.NoError(t, err)

	rows, err := csv.NewReader(&out).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1+2*30)
	assert.Equal(t, "walk", rows[1][0])
}

func TestRunTraceYAML(t *testing.T) {
	path := writeScript(t, "tour: living-room\nframes: 5\n")

	var out bytes.Buffer
	require.NoError(t, runTrace(&out, config.Default(), traceOptions{scripts: []string{path}, format: "yaml", workers: 1}))

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, path, decoded[0]["name"], "unnamed scripts are labelled by path")
}

func TestRunTraceErrors(t *testing.T) {
	cfg := config.Default()

	err := runTrace(&bytes.Buffer{}, cfg, traceOptions{format: "json"})
	assert.ErrorContains(t, err, "unknown format")

	path := writeScript(t, "tour: penthouse\nframes: 5\n")
	err = runTrace(&bytes.Buffer{}, cfg, traceOptions{scripts: []string{path}, format: "csv", workers: 1})
	assert.ErrorIs(t, err, config.ErrUnknownTour)
}

func TestRunValidateInsideModel(t *testing.T) {
	cfg := config.Default()
	ld := loader.NewLoader(loader.BackendTypeGLTF, loader.WithBounds("c.glb", loader.Bounds{
		Min: mgl32.Vec3{-6, 0, -9},
		Max: mgl32.Vec3{1, 3, 0},
	}))

	var out bytes.Buffer
	require.NoError(t, runValidate(&out, cfg, ld, validateOptions{strict: true}))
	assert.Contains(t, out.String(), "apartment: 21 waypoints, 20 sections")
	assert.NotContains(t, out.String(), "warning")
	assert.True(t, strings.HasSuffix(out.String(), "ok\n"))
}

func TestRunValidateOutsideModel(t *testing.T) {
	cfg := config.Default()
	small := loader.Bounds{Min: mgl32.Vec3{-1, 0, -4}, Max: mgl32.Vec3{0, 3, 0}}
	ld := loader.NewLoader(loader.BackendTypeGLTF, loader.WithBounds("small.glb", small))

	var out bytes.Buffer
	require.NoError(t, runValidate(&out, cfg, ld, validateOptions{model: "small.glb"}))
	assert.Contains(t, out.String(), "warning: waypoint 0")

	err := runValidate(&bytes.Buffer{}, cfg, ld, validateOptions{model: "small.glb", strict: true})
	assert.ErrorIs(t, err, errOutsideModel)
}
