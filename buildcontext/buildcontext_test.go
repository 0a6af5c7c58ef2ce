package buildcontext_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/alexandre-normand/slacklane/buildcontext"
	"github.com/alexandre-normand/slacklane/config"
	"github.com/alexandre-normand/slacklane/slog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

// gitRepo fakes git command outputs keyed by their space-joined arguments
type gitRepo struct {
	outputs map[string]string
	calls   []string
	dirs    []string
}

func (r *gitRepo) run(ctx context.Context, dir string, args ...string) (output string, err error) {
	cmd := strings.Join(args, " ")
	r.calls = append(r.calls, cmd)
	r.dirs = append(r.dirs, dir)

	if out, ok := r.outputs[cmd]; ok {
		return out, nil
	}

	return "", fmt.Errorf("fatal: not a git repository")
}

func noEnv(key string) string {
	return ""
}

func newRepo() *gitRepo {
	return &gitRepo{outputs: map[string]string{
		"rev-parse --abbrev-ref HEAD": "feature/birds\n",
		"log -1 --pretty=format:%ae":  "daniel@example.com",
		"log -1 --pretty=%B":          "Add tree swallow sightings\n\n",
		"log -1 --pretty=%h":          "0a1b2c3\n",
		"log -1 --pretty=%H":          "0a1b2c3d4e5f60718293a4b5c6d7e8f901234567\n",
	}}
}

func TestStatic(t *testing.T) {
	s := buildcontext.Static{Lane: "beta", Branch: "main", AuthorEmail: "a@b.com", CommitMessage: "Fix", CommitHash: "abcdef123", ShortCommitHash: "abc"}

	assert.Equal(t, "beta", s.LaneName())
	assert.Equal(t, "main", s.GitBranch())
	assert.Equal(t, "a@b.com", s.GitAuthorEmail())
	assert.Equal(t, "Fix", s.LastGitCommitMessage())
	assert.Equal(t, "abc", s.LastGitCommitHash(true))
	assert.Equal(t, "abcdef123", s.LastGitCommitHash(false))
}

func TestGitValuesFromRepository(t *testing.T) {
	repo := newRepo()
	v := config.NewViperWithDefaults()
	v.Set(config.LaneNameKey, "ios beta")

	g := buildcontext.NewGit(v, buildcontext.OptionCommandRunner(repo.run), buildcontext.OptionGetenv(noEnv), buildcontext.OptionDir("/src/app"))

	assert.Equal(t, "ios beta", g.LaneName())
	assert.Equal(t, "feature/birds", g.GitBranch())
	assert.Equal(t, "daniel@example.com", g.GitAuthorEmail())
	assert.Equal(t, "Add tree swallow sightings", g.LastGitCommitMessage())
	assert.Equal(t, "0a1b2c3", g.LastGitCommitHash(true))
	assert.Equal(t, "0a1b2c3d4e5f60718293a4b5c6d7e8f901234567", g.LastGitCommitHash(false))

	for _, dir := range repo.dirs {
		assert.Equal(t, "/src/app", dir)
	}
}

func TestGitBranchFromCIEnvironment(t *testing.T) {
	repo := newRepo()
	env := map[string]string{"BUILDKITE_BRANCH": "release/1.2", "CIRCLE_BRANCH": "ignored"}

	g := buildcontext.NewGit(viper.New(), buildcontext.OptionCommandRunner(repo.run), buildcontext.OptionGetenv(func(key string) string {
		return env[key]
	}))

	assert.Equal(t, "release/1.2", g.GitBranch())
	assert.Empty(t, repo.calls)
}

func TestGitBranchWithDetachedHead(t *testing.T) {
	repo := newRepo()
	repo.outputs["rev-parse --abbrev-ref HEAD"] = "HEAD\n"

	g := buildcontext.NewGit(viper.New(), buildcontext.OptionCommandRunner(repo.run), buildcontext.OptionGetenv(noEnv))

	assert.Equal(t, "", g.GitBranch())
}

func TestGitOutsideOfRepository(t *testing.T) {
	repo := &gitRepo{outputs: map[string]string{}}
	var logs strings.Builder

	g := buildcontext.NewGit(viper.New(), buildcontext.OptionCommandRunner(repo.run), buildcontext.OptionGetenv(noEnv),
		buildcontext.OptionLogger(slog.NewSLogger(newLogger(&logs), true)))

	assert.Equal(t, "", g.LaneName())
	assert.Equal(t, "", g.GitBranch())
	assert.Equal(t, "", g.GitAuthorEmail())
	assert.Equal(t, "", g.LastGitCommitMessage())
	assert.Equal(t, "", g.LastGitCommitHash(true))
	assert.Contains(t, logs.String(), "not a git repository")
}

func TestGitCommandsAreBoundedByTimeout(t *testing.T) {
	v := viper.New()
	v.Set(config.GitTimeoutKey, time.Duration(50)*time.Millisecond)

	var deadline time.Time
	var hasDeadline bool
	g := buildcontext.NewGit(v, buildcontext.OptionGetenv(noEnv), buildcontext.OptionCommandRunner(func(ctx context.Context, dir string, args ...string) (string, error) {
		deadline, hasDeadline = ctx.Deadline()
		return "daniel@example.com", nil
	}))

	assert.Equal(t, "daniel@example.com", g.GitAuthorEmail())
	assert.True(t, hasDeadline)
	assert.False(t, deadline.IsZero())
}
