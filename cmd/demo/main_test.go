package main

import (
	"bytes"
	"os"
	"testing"

	"scenedemo/internal/config"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ConfigErrorIsReturnedNotLogged(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("demo.yaml", []byte("scene:\n  cubeName: \"\"\n"), 0644))

	fs := pflag.NewFlagSet("demo", pflag.ContinueOnError)
	config.Flags(fs)
	require.NoError(t, fs.Parse([]string{"--config", "demo.yaml"}))

	var logs bytes.Buffer
	err := run(fs, &logs)
	assert.ErrorIs(t, err, config.ErrInvalid, "relative path read from the working directory")
	assert.Empty(t, logs.String())
}
