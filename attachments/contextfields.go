package attachments

import (
	"github.com/alexandre-normand/slacklane/buildcontext"
)

// ContextField identifies a field sourced from the build context
type ContextField int

// Context fields in the order they appear in an attachment
const (
	Lane ContextField = iota
	Result
	GitBranch
	GitAuthor
	GitCommit
	GitCommitHash
)

const (
	resultSuccess = "Success"
	resultError   = "Error"
)

type contextFieldDef struct {
	name  string
	title string
	short bool
}

var contextFieldDefs = []contextFieldDef{
	Lane:          {name: "lane", title: "Lane", short: true},
	Result:        {name: "test_result", title: "Result", short: true},
	GitBranch:     {name: "git_branch", title: "Git Branch", short: true},
	GitAuthor:     {name: "git_author", title: "Git Author", short: true},
	GitCommit:     {name: "last_git_commit", title: "Git Commit", short: false},
	GitCommitHash: {name: "last_git_commit_hash", title: "Git Commit Hash", short: false},
}

// ContextFields returns all context fields in attachment order
func ContextFields() []ContextField {
	return []ContextField{Lane, Result, GitBranch, GitAuthor, GitCommit, GitCommitHash}
}

// ContextFieldByName returns the context field with the given external name (i.e. git_branch)
func ContextFieldByName(name string) (f ContextField, ok bool) {
	for _, cf := range ContextFields() {
		if cf.Name() == name {
			return cf, true
		}
	}

	return 0, false
}

func (f ContextField) valid() bool {
	return f >= Lane && f <= GitCommitHash
}

// Name returns the external name of the field
func (f ContextField) Name() string {
	if !f.valid() {
		return ""
	}

	return contextFieldDefs[f].name
}

// Title returns the title of the field as displayed in an attachment
func (f ContextField) Title() string {
	if !f.valid() {
		return ""
	}

	return contextFieldDefs[f].title
}

// Short returns true if the field is rendered half-width
func (f ContextField) Short() bool {
	if !f.valid() {
		return false
	}

	return contextFieldDefs[f].short
}

// String returns the external name of the field
func (f ContextField) String() string {
	return f.Name()
}

// value returns the value of the field. An empty value means the field is absent
func (f ContextField) value(bc buildcontext.BuildContext, success bool) string {
	if f == Result {
		if success {
			return resultSuccess
		}

		return resultError
	}

	if bc == nil {
		return ""
	}

	switch f {
	case Lane:
		return bc.LaneName()
	case GitBranch:
		return bc.GitBranch()
	case GitAuthor:
		return bc.GitAuthorEmail()
	case GitCommit:
		return bc.LastGitCommitMessage()
	case GitCommitHash:
		return bc.LastGitCommitHash(true)
	}

	return ""
}

// ContextFieldSet is the whitelist of context fields to include in an attachment. A nil set
// includes all context fields while an empty set includes none
type ContextFieldSet map[ContextField]struct{}

// NewContextFieldSet returns a set holding the given fields. The set is never nil so calling it
// without fields returns a set including no context field
func NewContextFieldSet(fields ...ContextField) (s ContextFieldSet) {
	s = make(ContextFieldSet, len(fields))
	for _, f := range fields {
		s[f] = struct{}{}
	}

	return s
}

// Includes returns true if the field is whitelisted
func (s ContextFieldSet) Includes(f ContextField) bool {
	if s == nil {
		return true
	}

	_, ok := s[f]
	return ok
}

// Names returns the external names of the fields in the set, in attachment order
func (s ContextFieldSet) Names() (names []string) {
	names = make([]string, 0)
	for _, f := range ContextFields() {
		if s.Includes(f) {
			names = append(names, f.Name())
		}
	}

	return names
}
