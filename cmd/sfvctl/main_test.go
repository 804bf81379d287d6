package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunDefaultsToItem(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader("5;bar=baz\n"), &stdout, &stderr)
	assert.Equal(t, exitSuccess, code)
	assert.Contains(t, stdout.String(), "Integer(5)")
	assert.Contains(t, stdout.String(), "bar=Token(baz)")
}

func TestRunListSubcommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"list"}, strings.NewReader("1, 2, 3"), &stdout, &stderr)
	assert.Equal(t, exitSuccess, code)
	assert.Contains(t, stdout.String(), "Integer(1)")
}

func TestRunParseErrorExitsOne(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"item"}, strings.NewReader("1,,42"), &stdout, &stderr)
	assert.Equal(t, exitParseError, code)
	assert.NotEmpty(t, stderr.String())
}

func TestRunUsageErrorExitsTwo(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"bogus-command"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, exitUsageError, code)
}

func TestRunGetMissingKeySuggestsClosest(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"get", "primray"}, strings.NewReader("primary=1, secondary=2"), &stdout, &stderr)
	assert.Equal(t, exitParseError, code)
	assert.Contains(t, stderr.String(), "primary")
}

func TestRunGetFoundKey(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"get", "primary"}, strings.NewReader("primary=1, secondary=2"), &stdout, &stderr)
	assert.Equal(t, exitSuccess, code)
	assert.Contains(t, stdout.String(), "Integer(1)")
}
