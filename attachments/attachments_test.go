package attachments_test

import (
	"testing"
	"time"

	"github.com/alexandre-normand/slacklane/attachments"
	"github.com/alexandre-normand/slacklane/buildcontext"
	"github.com/alexandre-normand/slacklane/linkformat"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
)

var fullContext = buildcontext.Static{
	Lane:            "ios beta",
	Branch:          "main",
	AuthorEmail:     "daniel@example.com",
	CommitMessage:   "Add tree swallow sightings",
	CommitHash:      "0a1b2c3d4e5f60718293a4b5c6d7e8f901234567",
	ShortCommitHash: "0a1b2c3",
}

func TestBuildWithoutFields(t *testing.T) {
	opts := attachments.DefaultOptions()
	opts.Message = "ok"
	opts.IncludeContextFields = attachments.NewContextFieldSet()

	a := attachments.Build(opts, fullContext)

	assert.Equal(t, "good", a.Color)
	assert.Equal(t, "ok", a.Text)
	assert.Equal(t, "ok", a.Fallback)
	assert.Empty(t, a.Pretext)
	assert.Empty(t, a.Fields)
	assert.Equal(t, []string{"pretext", "text", "fields", "message"}, a.MarkdownIn)
}

func TestBuildFailure(t *testing.T) {
	opts := attachments.Options{Message: "fail", Success: false}

	a := attachments.Build(opts, nil)

	assert.Equal(t, "danger", a.Color)
	assert.Equal(t, []slack.AttachmentField{{Title: "Result", Value: "Error", Short: true}}, a.Fields)
}

func TestBuildWithAllContextFields(t *testing.T) {
	opts := attachments.DefaultOptions()
	opts.Message = "App successfully released!"

	a := attachments.Build(opts, fullContext)

	assert.Equal(t, []slack.AttachmentField{
		{Title: "Lane", Value: "ios beta", Short: true},
		{Title: "Result", Value: "Success", Short: true},
		{Title: "Git Branch", Value: "main", Short: true},
		{Title: "Git Author", Value: "daniel@example.com", Short: true},
		{Title: "Git Commit", Value: "Add tree swallow sightings", Short: false},
		{Title: "Git Commit Hash", Value: "0a1b2c3", Short: false},
	}, a.Fields)
}

func TestBuildFieldOrdering(t *testing.T) {
	opts := attachments.DefaultOptions()
	opts.Message = "Released"
	opts.Payload = attachments.Payload{{Key: "X", Value: "1"}, {Key: "Y", Value: "2"}}
	opts.IncludeContextFields = attachments.NewContextFieldSet(attachments.GitBranch, attachments.Lane)

	a := attachments.Build(opts, fullContext)

	titles := make([]string, 0)
	for _, f := range a.Fields {
		titles = append(titles, f.Title)
	}

	assert.Equal(t, []string{"X", "Y", "Lane", "Git Branch"}, titles)
}

func TestBuildSkipsAbsentContextValues(t *testing.T) {
	opts := attachments.DefaultOptions()

	a := attachments.Build(opts, buildcontext.Static{Branch: "main"})

	assert.Equal(t, []slack.AttachmentField{
		{Title: "Result", Value: "Success", Short: true},
		{Title: "Git Branch", Value: "main", Short: true},
	}, a.Fields)
}

func TestBuildHideAuthorOnSuccess(t *testing.T) {
	opts := attachments.DefaultOptions()
	opts.HideAuthorOnSuccess = true
	opts.IncludeContextFields = attachments.NewContextFieldSet(attachments.GitAuthor)

	a := attachments.Build(opts, fullContext)
	assert.Empty(t, a.Fields)

	opts.Success = false
	a = attachments.Build(opts, fullContext)
	assert.Equal(t, []slack.AttachmentField{{Title: "Git Author", Value: "daniel@example.com", Short: true}}, a.Fields)
}

func TestBuildFormatsMessagePretextAndPayload(t *testing.T) {
	opts := attachments.DefaultOptions()
	opts.Message = `Released <a href="https://x.io/release">notes</a>`
	opts.Pretext = "See [changelog](https://x.io/changelog)"
	opts.Payload = attachments.Payload{
		{Key: "Build", Value: 42},
		{Key: "Docs", Value: "[docs](https://x.io/docs)"},
		{Key: "Empty", Value: nil},
	}
	opts.IncludeContextFields = attachments.NewContextFieldSet()

	a := attachments.Build(opts, nil)

	assert.Equal(t, "Released <https://x.io/release|notes>", a.Text)
	assert.Equal(t, "Released <https://x.io/release|notes>", a.Fallback)
	assert.Equal(t, "See <https://x.io/changelog|changelog>", a.Pretext)
	assert.Equal(t, []slack.AttachmentField{
		{Title: "Build", Value: "42", Short: false},
		{Title: "Docs", Value: "<https://x.io/docs|docs>", Short: false},
		{Title: "Empty", Value: "", Short: false},
	}, a.Fields)
}

func TestBuildWithLinkFormatSubset(t *testing.T) {
	opts := attachments.DefaultOptions()
	opts.Message = `<a href="https://x.io">x</a> [y](https://y.io)`
	opts.LinkFormats = linkformat.Markdown

	a := attachments.Build(opts, nil)

	assert.Equal(t, `<a href="https://x.io">x</a> <https://y.io|y>`, a.Text)
}

func TestBuildPayloadValueWithoutStringConversion(t *testing.T) {
	opts := attachments.DefaultOptions()
	opts.IncludeContextFields = attachments.NewContextFieldSet()
	opts.Payload = attachments.Payload{{Key: "Duration", Value: struct{ Minutes int }{Minutes: 3}}}

	a := attachments.Build(opts, nil)

	assert.Equal(t, []slack.AttachmentField{{Title: "Duration", Value: "{3}", Short: false}}, a.Fields)
}

func TestBuildPayloadTimeValue(t *testing.T) {
	when := time.Date(2024, time.March, 3, 10, 0, 0, 0, time.UTC)
	opts := attachments.DefaultOptions()
	opts.IncludeContextFields = attachments.NewContextFieldSet()
	opts.Payload = attachments.Payload{{Key: "Build Date", Value: when}}

	a := attachments.Build(opts, nil)

	assert.Equal(t, when.String(), a.Fields[0].Value)
}

func TestBuildWithOverrides(t *testing.T) {
	opts := attachments.DefaultOptions()
	opts.Message = "Released"
	opts.Payload = attachments.Payload{{Key: "X", Value: "1"}}
	opts.IncludeContextFields = attachments.NewContextFieldSet()
	opts.Overrides = attachments.Overrides{
		"thumb_url": attachments.Value("http://example.com/path/to/thumb.png"),
		"fields": attachments.Value([]slack.AttachmentField{
			{Title: "My Field", Value: "My Value", Short: true},
			{Title: "X", Value: "1", Short: false},
		}),
		"color": attachments.Unset(),
		"title": attachments.Unset(),
	}

	props := attachments.BuildProperties(opts, nil)
	_, hasTitle := props["title"]
	assert.False(t, hasTitle)

	a := attachments.FromProperties(props)

	assert.Equal(t, "http://example.com/path/to/thumb.png", a.ThumbURL)
	assert.Equal(t, "good", a.Color)
	assert.Equal(t, []slack.AttachmentField{
		{Title: "X", Value: "1", Short: false},
		{Title: "My Field", Value: "My Value", Short: true},
	}, a.Fields)
}

func TestBuildWithMismatchedOverrideKeepsTheRest(t *testing.T) {
	opts := attachments.DefaultOptions()
	opts.Message = "Released"
	opts.IncludeContextFields = attachments.NewContextFieldSet()
	opts.Overrides = attachments.Overrides{
		"color":     attachments.Value(42),
		"footer":    attachments.Value("fastlane"),
		"mrkdwn_in": attachments.Value("text"),
	}

	props := attachments.BuildProperties(opts, nil)
	assert.Equal(t, 42, props["color"])
	assert.Equal(t, "text", props["mrkdwn_in"])

	a := attachments.FromProperties(props)

	assert.Equal(t, "Released", a.Text)
	assert.Equal(t, "fastlane", a.Footer)
	assert.Empty(t, a.Color)
}
