package attachments

import (
	"encoding/json"
	"fmt"

	"github.com/alexandre-normand/slacklane/buildcontext"
	"github.com/alexandre-normand/slacklane/linkformat"
	"github.com/slack-go/slack"
	"github.com/spf13/cast"
)

const (
	colorGood   = "good"
	colorDanger = "danger"
)

// Attachment property names
const (
	FallbackProperty   = "fallback"
	TextProperty       = "text"
	PretextProperty    = "pretext"
	ColorProperty      = "color"
	MarkdownInProperty = "mrkdwn_in"
	FieldsProperty     = "fields"

	FieldTitleProperty = "title"
	FieldValueProperty = "value"
	FieldShortProperty = "short"
)

// markdownIn lists the attachment properties rendered with Slack markup
var markdownIn = []string{"pretext", "text", "fields", "message"}

// PayloadEntry is a caller-defined key/value rendered as a full-width attachment field
type PayloadEntry struct {
	Key   string
	Value interface{}
}

// Payload is an ordered list of payload entries. Fields are rendered in payload order
type Payload []PayloadEntry

// Options holds everything that goes into an attachment
type Options struct {
	Message string
	Pretext string
	Success bool
	Payload Payload

	// IncludeContextFields is the whitelist of context fields. Leave nil to include all of them
	IncludeContextFields ContextFieldSet

	// Overrides are deep merged over the assembled attachment properties
	Overrides Overrides

	// HideAuthorOnSuccess suppresses the git author field when Success is true
	HideAuthorOnSuccess bool

	// LinkFormats selects the link syntaxes converted to Slack links. The zero value enables all
	LinkFormats linkformat.Formats
}

// DefaultOptions returns options for a successful build with all context fields included
func DefaultOptions() (o Options) {
	return Options{Success: true}
}

// BuildProperties assembles the attachment properties. The message, pretext and payload values
// go through link formatting and context field values come from bc which may be nil.
// Overrides are merged last so they can add, replace or append to any property
func BuildProperties(opts Options, bc buildcontext.BuildContext) (props map[string]interface{}) {
	formatter := linkformat.New(opts.LinkFormats)
	message := formatter.Format(opts.Message)

	color := colorDanger
	if opts.Success {
		color = colorGood
	}

	mrkdwnIn := make([]interface{}, 0, len(markdownIn))
	for _, p := range markdownIn {
		mrkdwnIn = append(mrkdwnIn, p)
	}

	props = map[string]interface{}{
		FallbackProperty:   message,
		TextProperty:       message,
		ColorProperty:      color,
		MarkdownInProperty: mrkdwnIn,
	}

	if opts.Pretext != "" {
		props[PretextProperty] = formatter.Format(opts.Pretext)
	}

	fields := make([]interface{}, 0, len(opts.Payload)+len(contextFieldDefs))
	for _, entry := range opts.Payload {
		fields = append(fields, newField(entry.Key, formatter.Format(payloadValue(entry.Value)), false))
	}

	for _, cf := range ContextFields() {
		if !opts.IncludeContextFields.Includes(cf) {
			continue
		}

		if cf == GitAuthor && opts.HideAuthorOnSuccess && opts.Success {
			continue
		}

		if v := cf.value(bc, opts.Success); v != "" {
			fields = append(fields, newField(cf.Title(), v, cf.Short()))
		}
	}

	props[FieldsProperty] = fields

	return Merge(props, opts.Overrides)
}

// Build assembles the attachment. Override values that don't fit the slack.Attachment structure
// are dropped while the rest of the attachment is kept
func Build(opts Options, bc buildcontext.BuildContext) (a slack.Attachment) {
	return FromProperties(BuildProperties(opts, bc))
}

// FromProperties decodes attachment properties into a slack.Attachment as best it can
func FromProperties(props map[string]interface{}) (a slack.Attachment) {
	raw, err := json.Marshal(props)
	if err != nil {
		return a
	}

	// Type mismatches leave the offending properties unset and everything else decoded
	_ = json.Unmarshal(raw, &a)

	return a
}

func newField(title string, value string, short bool) map[string]interface{} {
	return map[string]interface{}{
		FieldTitleProperty: title,
		FieldValueProperty: value,
		FieldShortProperty: short,
	}
}

// payloadValue renders a payload value as a string
func payloadValue(v interface{}) string {
	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprint(v)
	}

	return s
}
