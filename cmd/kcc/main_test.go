package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/kcc/internal/client/cli"
)

type session struct {
	t       *testing.T
	dataDir string
}

func (s session) kcc(args ...string) (int, string, string) {
	s.t.Helper()
	var out, errOut bytes.Buffer
	full := append([]string{"-d", s.dataDir, "-no-color"}, args...)
	code := run(context.Background(), full, &out, &errOut)
	return code, out.String(), errOut.String()
}

func (s session) ok(args ...string) string {
	s.t.Helper()
	code, out, errOut := s.kcc(args...)
	require.Equal(s.t, cli.ExitOK, code, errOut)
	return out
}

func TestRun_EndToEnd(t *testing.T) {
	host := t.TempDir()
	enrico := session{t: t, dataDir: t.TempDir()}
	mario := session{t: t, dataDir: t.TempDir()}

	assert.Equal(t, "The user #enrico has been created.\n", enrico.ok("user", "new", "enrico"))
	enrico.ok("host", "register", host)
	assert.Equal(t, "topic /kotlin has been created.\n", enrico.ok("topic", "new", "kotlin"))
	assert.FileExists(t, filepath.Join(host, ".kotlin#enrico.kcc"))

	mario.ok("user", "new", "mario")
	mario.ok("host", "register", "file:"+host)
	assert.Equal(t, "topics:\n    - /kotlin #enrico\n", mario.ok("topic"))

	code, _, errOut := mario.kcc("/kotlin", "ciao")
	assert.Equal(t, cli.ExitFailure, code)
	assert.Contains(t, errOut, "join it first")

	mario.ok("topic", "join", "kotlin")
	enrico.ok("/kotlin", "hi", "all")
	assert.Equal(t,
		"/kotlin | enrico > hi all\n/kotlin | mario > ciao\n",
		mario.ok("/kotlin", "ciao"))

	assert.Equal(t, "/kotlin | mario > ciao\n", enrico.ok("/kotlin/mario"))
	assert.Equal(t, "/kotlin | mario > ciao\n", enrico.ok("/kotlin/1"))

	code, _, errOut = mario.kcc("topic", "del", "kotlin")
	assert.Equal(t, cli.ExitFailure, code)
	assert.Contains(t, errOut, "not authorized")

	enrico.ok("topic", "del", "kotlin")
	assert.Equal(t, "topics: no /topics\n", mario.ok("topic"))
	assert.Contains(t, mario.ok("user"), "topics: no /topics")
}

func TestRun_RegisterMissingHost(t *testing.T) {
	s := session{t: t, dataDir: t.TempDir()}
	code, _, errOut := s.kcc("host", "register", filepath.Join(t.TempDir(), "absent"))
	assert.Equal(t, cli.ExitFailure, code)
	assert.Contains(t, errOut, "must be an existing directory")
}

func TestRun_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "kcc")
	s := session{t: t, dataDir: dir}
	s.ok("--version")

	info, err := os.Stat(filepath.Join(dir, "profile.db"))
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestRun_BadFlags(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"-n", "-1", "topic"}, &out, &errOut)
	assert.Equal(t, cli.ExitUsage, code)
	assert.Contains(t, errOut.String(), "must not be negative")

	errOut.Reset()
	code = run(context.Background(), []string{"-d", t.TempDir(), "-l", "loud"}, &out, &errOut)
	assert.Equal(t, cli.ExitUsage, code)
	assert.Contains(t, errOut.String(), "unknown log level")
}
