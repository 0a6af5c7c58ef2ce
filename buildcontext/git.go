package buildcontext

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/alexandre-normand/slacklane/config"
	"github.com/alexandre-normand/slacklane/slog"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Environment variables set by CI services holding the branch being built, in lookup order
var branchEnvNames = []string{
	"GIT_BRANCH",
	"BRANCH_NAME",
	"TRAVIS_BRANCH",
	"BITRISE_GIT_BRANCH",
	"CI_BUILD_REF_NAME",
	"CI_COMMIT_REF_NAME",
	"WERCKER_GIT_BRANCH",
	"BUILDKITE_BRANCH",
	"APPCENTER_BRANCH",
	"CIRCLE_BRANCH",
}

// CommandRunner runs a git command in dir and returns its standard output
type CommandRunner func(ctx context.Context, dir string, args ...string) (output string, err error)

// Git is a BuildContext resolving values from the environment and, when the environment
// doesn't have them, from the git repository found in its directory
type Git struct {
	dir     string
	lane    string
	timeout time.Duration
	getenv  func(key string) string
	run     CommandRunner
	logger  slog.SLogger
}

// GitOption defines an option on a Git build context
type GitOption func(g *Git)

// OptionDir sets the directory git commands are run in. Defaults to the working directory
func OptionDir(dir string) GitOption {
	return func(g *Git) {
		g.dir = dir
	}
}

// OptionCommandRunner sets the function running git commands
func OptionCommandRunner(run CommandRunner) GitOption {
	return func(g *Git) {
		g.run = run
	}
}

// OptionGetenv sets the function used to look up environment variables
func OptionGetenv(getenv func(key string) string) GitOption {
	return func(g *Git) {
		g.getenv = getenv
	}
}

// OptionLogger sets the logger
func OptionLogger(logger slog.SLogger) GitOption {
	return func(g *Git) {
		g.logger = logger
	}
}

// NewGit returns a new Git build context. The lane name comes from config.LaneNameKey and each
// git command is bounded by config.GitTimeoutKey
func NewGit(v *viper.Viper, options ...GitOption) (g *Git) {
	g = new(Git)
	g.lane = v.GetString(config.LaneNameKey)
	g.timeout = v.GetDuration(config.GitTimeoutKey)
	g.getenv = os.Getenv
	g.run = runGit
	g.logger = slog.Discard()

	for _, opt := range options {
		opt(g)
	}

	return g
}

// LaneName returns the configured lane name
func (g *Git) LaneName() string {
	return g.lane
}

// GitBranch returns the branch from the first CI environment variable set or, if none is,
// from the checked out branch. A detached HEAD has no branch
func (g *Git) GitBranch() string {
	for _, name := range branchEnvNames {
		if b := strings.TrimSpace(g.getenv(name)); b != "" {
			return b
		}
	}

	b := g.git("rev-parse", "--abbrev-ref", "HEAD")
	if b == "HEAD" {
		return ""
	}

	return b
}

// GitAuthorEmail returns the author email of the last commit
func (g *Git) GitAuthorEmail() string {
	return g.git("log", "-1", "--pretty=format:%ae")
}

// LastGitCommitMessage returns the message of the last commit
func (g *Git) LastGitCommitMessage() string {
	return g.git("log", "-1", "--pretty=%B")
}

// LastGitCommitHash returns the hash of the last commit
func (g *Git) LastGitCommitHash(short bool) string {
	if short {
		return g.git("log", "-1", "--pretty=%h")
	}

	return g.git("log", "-1", "--pretty=%H")
}

// git runs a git command and returns its trimmed output. Failures are logged and result in
// an empty value
func (g *Git) git(args ...string) string {
	ctx := context.Background()
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	out, err := g.run(ctx, g.dir, args...)
	if err != nil {
		g.logger.Debugf("Unable to run git %v: %v\n", args, err)
		return ""
	}

	return strings.TrimSpace(out)
}

// runGit is the default CommandRunner executing the git binary
func runGit(ctx context.Context, dir string, args ...string) (output string, err error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return "", errors.Wrapf(err, "git %s: %s", strings.Join(args, " "), strings.TrimSpace(stderr.String()))
	}

	return string(out), nil
}
