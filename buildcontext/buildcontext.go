// Package buildcontext exposes what is known about the running build: the current lane and
// the state of the git repository it runs in. Empty values mean "unknown" everywhere
package buildcontext

// BuildContext is implemented by any value giving access to the current build's lane and git
// details
type BuildContext interface {
	// LaneName returns the name of the current lane
	LaneName() string

	// GitBranch returns the current git branch
	GitBranch() string

	// GitAuthorEmail returns the email of the author of the last commit
	GitAuthorEmail() string

	// LastGitCommitMessage returns the message of the last commit
	LastGitCommitMessage() string

	// LastGitCommitHash returns the hash of the last commit in its short or long form
	LastGitCommitHash(short bool) string
}

// Static is a BuildContext with fixed values
type Static struct {
	Lane            string
	Branch          string
	AuthorEmail     string
	CommitMessage   string
	CommitHash      string
	ShortCommitHash string
}

// LaneName returns the lane
func (s Static) LaneName() string {
	return s.Lane
}

// GitBranch returns the branch
func (s Static) GitBranch() string {
	return s.Branch
}

// GitAuthorEmail returns the author email
func (s Static) GitAuthorEmail() string {
	return s.AuthorEmail
}

// LastGitCommitMessage returns the commit message
func (s Static) LastGitCommitMessage() string {
	return s.CommitMessage
}

// LastGitCommitHash returns the short or long commit hash
func (s Static) LastGitCommitHash(short bool) string {
	if short {
		return s.ShortCommitHash
	}

	return s.CommitHash
}
