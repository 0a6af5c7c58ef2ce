// Package assertattachment provides testing functions to validate slack message attachments
package assertattachment

import (
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
)

// IsSuccess asserts that the attachment has the color of a successful build
func IsSuccess(t assert.TestingT, a slack.Attachment) bool {
	return assert.Equalf(t, "good", a.Color, "Attachment color expected to be [good] but was [%s]", a.Color)
}

// IsFailure asserts that the attachment has the color of a failed build
func IsFailure(t assert.TestingT, a slack.Attachment) bool {
	return assert.Equalf(t, "danger", a.Color, "Attachment color expected to be [danger] but was [%s]", a.Color)
}

// HasField asserts that the attachment has a field with the title and value
func HasField(t assert.TestingT, a slack.Attachment, title string, value string) bool {
	for _, f := range a.Fields {
		if f.Title == title {
			return assert.Equalf(t, value, f.Value, "Attachment field [%s] expected to be [%s] but was [%s]", title, value, f.Value)
		}
	}

	return assert.Failf(t, "missing attachment field", "Attachment expected to have field [%s] but its fields were %v", title, a.Fields)
}

// HasNoField asserts that the attachment has no field with the title
func HasNoField(t assert.TestingT, a slack.Attachment, title string) bool {
	for _, f := range a.Fields {
		if f.Title == title {
			return assert.Failf(t, "unexpected attachment field", "Attachment expected to not have field [%s] but it had value [%s]", title, f.Value)
		}
	}

	return true
}
