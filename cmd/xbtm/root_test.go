package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func execute(t *testing.T, args ...string) (output string, err error) {
	cmd := newRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err = cmd.Execute()
	output = buf.String()
	return
}

func TestExample(t *testing.T) {
	assert := assert.New(t)

	output, err := execute(t, "--steps", "2")
	assert.NoError(err)
	assert.Equal(""+
		"[B, B]\n"+
		"B, s1 -> X, R, s2\n"+
		"[X, B]\n"+
		"B, s2 -> B, L, s3\n"+
		"halt: step budget exceeded after 2 steps, state s3, head 0, tape [X, B]\n",
		output)
}

func TestQuiet(t *testing.T) {
	assert := assert.New(t)

	output, err := execute(t, "-q", "--start", "s9")
	assert.NoError(err)
	assert.Equal("halt: no transition after 0 steps, state s9, head 0, tape [B, B]\n", output)
}

func TestProgramFile(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "fill.tm")
	err := os.WriteFile(path, []byte(strings.Join([]string{
		".blank _",
		"_, s1 -> MARK, R, s1",
	}, "\n")), 0o644)
	assert.NoError(err)

	output, err := execute(t, "-q", "-D", "MARK=1", "-n", "4", path)
	assert.NoError(err)
	assert.Equal("halt: no transition after 4 steps, state s1, head 0, tape [1, 1, 1, 1]\n", output)

	_, err = execute(t, "-D", "MARK", path)
	assert.Error(err)
}

func TestDump(t *testing.T) {
	assert := assert.New(t)

	output, err := execute(t, "--dump", "table")
	assert.NoError(err)
	assert.Equal(""+
		"B, s1 -> X, R, s2\n"+
		"B, s2 -> B, L, s3\n"+
		"X, s3 -> B, R, s4\n"+
		"B, s4 -> B, L, s1\n",
		output)

	output, err = execute(t, "--dump", "yaml")
	assert.NoError(err)
	assert.Contains(output, "name: xb\n")

	_, err = execute(t, "--dump", "json")
	assert.Error(err)
}

func TestErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := execute(t, "-n", "1")
	assert.Error(err)

	_, err = execute(t, filepath.Join(t.TempDir(), "missing.tm"))
	assert.Error(err)

	_, err = execute(t, "a", "b")
	assert.Error(err)
}
