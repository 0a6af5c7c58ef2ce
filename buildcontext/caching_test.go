package buildcontext_test

import (
	"io"
	"log"
	"testing"

	"github.com/alexandre-normand/slacklane/buildcontext"
	"github.com/alexandre-normand/slacklane/config"
	"github.com/alexandre-normand/slacklane/slog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogger(w io.Writer) *log.Logger {
	return log.New(w, "", 0)
}

// countingBuildContext counts how many times each value is loaded
type countingBuildContext struct {
	buildcontext.Static
	loads map[string]int
}

func newCountingBuildContext() *countingBuildContext {
	return &countingBuildContext{
		Static: buildcontext.Static{Lane: "beta", Branch: "main", AuthorEmail: "a@b.com", CommitMessage: "Fix", CommitHash: "abcdef123", ShortCommitHash: "abc"},
		loads:  make(map[string]int),
	}
}

func (c *countingBuildContext) LaneName() string {
	c.loads["lane"]++
	return c.Static.LaneName()
}

func (c *countingBuildContext) GitBranch() string {
	c.loads["branch"]++
	return c.Static.GitBranch()
}

func (c *countingBuildContext) LastGitCommitHash(short bool) string {
	if short {
		c.loads["short"]++
	} else {
		c.loads["long"]++
	}

	return c.Static.LastGitCommitHash(short)
}

func TestCachingLoadsOnce(t *testing.T) {
	loader := newCountingBuildContext()
	v := config.NewViperWithDefaults()

	bc, err := buildcontext.NewCaching(v, loader, slog.Discard())
	require.Nil(t, err)

	for i := 0; i < 3; i++ {
		assert.Equal(t, "beta", bc.LaneName())
		assert.Equal(t, "main", bc.GitBranch())
		assert.Equal(t, "abc", bc.LastGitCommitHash(true))
		assert.Equal(t, "abcdef123", bc.LastGitCommitHash(false))
		assert.Equal(t, "a@b.com", bc.GitAuthorEmail())
		assert.Equal(t, "Fix", bc.LastGitCommitMessage())
	}

	assert.Equal(t, map[string]int{"lane": 1, "branch": 1, "short": 1, "long": 1}, loader.loads)
}

func TestCachingDisabled(t *testing.T) {
	loader := newCountingBuildContext()
	v := viper.New()
	v.Set(config.BuildContextCacheSizeKey, 0)

	bc, err := buildcontext.NewCaching(v, loader, slog.Discard())
	require.Nil(t, err)

	bc.GitBranch()
	bc.GitBranch()

	assert.Equal(t, 2, loader.loads["branch"])
}

func TestCachingWithInvalidSize(t *testing.T) {
	v := viper.New()
	v.Set(config.BuildContextCacheSizeKey, -1)

	_, err := buildcontext.NewCaching(v, newCountingBuildContext(), slog.Discard())

	if assert.NotNil(t, err) {
		assert.Contains(t, err.Error(), "invalid build context cache size [-1]")
	}
}
