package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xyproto/env/v2"
)

func writeSource(t *testing.T, source string) string {
	path := filepath.Join(t.TempDir(), "test.a256")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return path
}

func TestRun(t *testing.T) {
	table := [](struct {
		name   string
		source string
		args   []string
		status int
		stdout string
		stderr string
	}){
		{"exit", "set $01, 7\nstop $01.sd0, 0\n", nil, 7, "", "exit=7"},
		{"output", "set $01, 3\nstop $01, $(STOP_SB)\n", nil, 0,
			"[$01]:sb 3 0 0 0 3 0 0 0 3 0 0 0 3 0 0 0 3 0 0 0 3 0 0 0 3 0 0 0 3 0 0 0\n", ""},
		{"syntax", "nop\n  addd $01, $02\n", nil, EXIT_FAILURE, "", "test.a256:2:16: unexpected character"},
		{"unknown", "nop\nfoo\n", nil, EXIT_FAILURE, "", "test.a256:2:1: instruction unknown"},
		{"runtime", "nop\n  divsd $01, $02, $03\n", nil, EXIT_FAILURE, "", "test.a256:2:3: divsd:"},
		{"steps", "@L: j @L\n", []string{"-n", "10"}, EXIT_FAILURE, "", "step limit reached"},
		{"checked", "ld $01, $CS, 0\n", []string{"-checked"}, EXIT_FAILURE, "", "fault loading"},
		{"json", "nop\n", []string{"-log", "json", "-m", "0x20000"}, 0, "", `"level":"info"`},
	}

	for _, entry := range table {
		t.Run(entry.name, func(t *testing.T) {
			assert := assert.New(t)

			path := writeSource(t, entry.source)
			args := append([]string{"a256", "-c", path}, entry.args...)

			var stdout, stderr bytes.Buffer
			status := run(args, &stdout, &stderr)

			assert.Equal(entry.status, status, stderr.String())
			assert.Equal(entry.stdout, stdout.String())
			assert.Contains(stderr.String(), entry.stderr)
		})
	}
}

func TestRunUsage(t *testing.T) {
	assert := assert.New(t)

	var stdout, stderr bytes.Buffer

	assert.Equal(EXIT_USAGE, run([]string{"a256"}, &stdout, &stderr))
	assert.Contains(stderr.String(), ErrNoSource.Error())

	stderr.Reset()
	assert.Equal(EXIT_USAGE, run([]string{"a256", "-c", "x", "extra"}, &stdout, &stderr))
	assert.Contains(stderr.String(), ErrArguments.Error())

	stderr.Reset()
	assert.Equal(EXIT_USAGE, run([]string{"a256", "-c", "x", "-log", "xml"}, &stdout, &stderr))
	assert.Contains(stderr.String(), ErrLogFormat.Error())

	stderr.Reset()
	assert.Equal(EXIT_FAILURE, run([]string{"a256", "-c", filepath.Join(t.TempDir(), "missing")}, &stdout, &stderr))
}

func TestRunEnvironment(t *testing.T) {
	assert := assert.New(t)

	// The environment is cached; reload it after every change.
	t.Cleanup(env.Load)
	t.Setenv("A256_STEPS", "5")
	t.Setenv("A256_CHECKED", "true")
	env.Load()

	cfg, err := parse([]string{"a256", "-c", "x"}, &bytes.Buffer{})
	assert.NoError(err)
	assert.Equal(5, cfg.steps)
	assert.True(cfg.checked)
	assert.Equal("console", cfg.log)

	cfg, err = parse([]string{"a256", "-c", "x", "-n", "0"}, &bytes.Buffer{})
	assert.NoError(err)
	assert.Equal(0, cfg.steps)

	t.Setenv("A256_STEPS", "7")
	env.Load()

	cfg, err = parse([]string{"a256", "-c", "x"}, &bytes.Buffer{})
	assert.NoError(err)
	assert.Equal(7, cfg.steps)

	path := writeSource(t, "@L: j @L\n")
	var stdout, stderr bytes.Buffer
	assert.Equal(EXIT_FAILURE, run([]string{"a256", "-c", path, "-n", "5"}, &stdout, &stderr))
	assert.Contains(stderr.String(), "step limit reached")
}
