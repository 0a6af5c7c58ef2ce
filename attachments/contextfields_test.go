package attachments_test

import (
	"testing"

	"github.com/alexandre-normand/slacklane/attachments"
	"github.com/stretchr/testify/assert"
)

func TestContextFieldDefinitions(t *testing.T) {
	tests := []struct {
		field attachments.ContextField
		name  string
		title string
		short bool
	}{
		{attachments.Lane, "lane", "Lane", true},
		{attachments.Result, "test_result", "Result", true},
		{attachments.GitBranch, "git_branch", "Git Branch", true},
		{attachments.GitAuthor, "git_author", "Git Author", true},
		{attachments.GitCommit, "last_git_commit", "Git Commit", false},
		{attachments.GitCommitHash, "last_git_commit_hash", "Git Commit Hash", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.name, tc.field.Name())
			assert.Equal(t, tc.name, tc.field.String())
			assert.Equal(t, tc.title, tc.field.Title())
			assert.Equal(t, tc.short, tc.field.Short())

			f, ok := attachments.ContextFieldByName(tc.name)
			assert.True(t, ok)
			assert.Equal(t, tc.field, f)
		})
	}
}

func TestContextFieldByUnknownName(t *testing.T) {
	_, ok := attachments.ContextFieldByName("Lane")

	assert.False(t, ok)
}

func TestInvalidContextField(t *testing.T) {
	f := attachments.ContextField(42)

	assert.Empty(t, f.Name())
	assert.Empty(t, f.Title())
	assert.False(t, f.Short())
}

func TestContextFieldSetIncludes(t *testing.T) {
	var all attachments.ContextFieldSet
	none := attachments.NewContextFieldSet()
	some := attachments.NewContextFieldSet(attachments.GitBranch)

	for _, f := range attachments.ContextFields() {
		assert.True(t, all.Includes(f))
		assert.False(t, none.Includes(f))
		assert.Equal(t, f == attachments.GitBranch, some.Includes(f))
	}

	assert.Len(t, all.Names(), 6)
}
