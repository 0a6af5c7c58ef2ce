package slacklane

import (
	"context"
	"strings"

	"github.com/alexandre-normand/slacklane/attachments"
	"github.com/alexandre-normand/slacklane/config"
	"github.com/slack-go/slack"
)

const (
	postAction   = "post message"
	updateAction = "update message"
	deleteAction = "delete message"
)

// Channel prefixes that don't get a # added
var channelPrefixes = []string{"#", "C", "@"}

// PostMessage posts a message with an attachment built from the request and the build context
// (see https://api.slack.com/methods/chat.postMessage). On success, the Result is saved as the
// PostToSlackResult shared value
func (b *Bot) PostMessage(ctx context.Context, req PostMessageRequest) (r *Result, err error) {
	channel := channelName(req.Channel)
	attachment := b.attachment(req.MessageContent)

	options := []slack.MsgOption{slack.MsgOptionAttachments(attachment)}
	if req.Username != "" {
		options = append(options, slack.MsgOptionUsername(req.Username))
	}

	if req.IconURL != "" {
		options = append(options, slack.MsgOptionIconURL(req.IconURL))
	}

	if req.ThreadTimestamp != "" {
		options = append(options, slack.MsgOptionTS(req.ThreadTimestamp))
	}

	b.logger.Debugf("Posting message to [%s] with attachment [%v]\n", channel, attachment)

	return b.run(ctx, postAction, PostToSlackResult, "Successfully sent Slack notification", func(ctx context.Context) (map[string]interface{}, error) {
		rChannel, rTimestamp, err := b.api.PostMessageContext(ctx, channel, options...)

		return map[string]interface{}{"ok": true, "channel": rChannel, "ts": rTimestamp}, err
	})
}

// UpdateMessage replaces the attachment of an existing message (see
// https://api.slack.com/methods/chat.update). On success, the Result is saved as the
// UpdateSlackMessageResult shared value
func (b *Bot) UpdateMessage(ctx context.Context, req UpdateMessageRequest) (r *Result, err error) {
	if req.Channel == "" || req.Timestamp == "" {
		return b.reject(updateAction, "channel [%s] and ts [%s] are required", req.Channel, req.Timestamp)
	}

	attachment := b.attachment(req.MessageContent)

	b.logger.Debugf("Updating message [%s] in [%s] with attachment [%v]\n", req.Timestamp, req.Channel, attachment)

	return b.run(ctx, updateAction, UpdateSlackMessageResult, "Successfully updated the Slack message", func(ctx context.Context) (map[string]interface{}, error) {
		rChannel, rTimestamp, rText, err := b.api.UpdateMessageContext(ctx, req.Channel, req.Timestamp, slack.MsgOptionAttachments(attachment))

		return map[string]interface{}{"ok": true, "channel": rChannel, "ts": rTimestamp, "text": rText}, err
	})
}

// DeleteMessage deletes an existing message (see https://api.slack.com/methods/chat.delete).
// On success, the Result is saved as the DeleteSlackMessageResult shared value
func (b *Bot) DeleteMessage(ctx context.Context, req DeleteMessageRequest) (r *Result, err error) {
	if req.Channel == "" || req.Timestamp == "" {
		return b.reject(deleteAction, "channel [%s] and ts [%s] are required", req.Channel, req.Timestamp)
	}

	b.logger.Debugf("Deleting message [%s] in [%s]\n", req.Timestamp, req.Channel)

	return b.run(ctx, deleteAction, DeleteSlackMessageResult, "Successfully deleted the Slack message!", func(ctx context.Context) (map[string]interface{}, error) {
		rChannel, rTimestamp, err := b.api.DeleteMessageContext(ctx, req.Channel, req.Timestamp)

		return map[string]interface{}{"ok": true, "channel": rChannel, "ts": rTimestamp}, err
	})
}

// attachment builds the attachment of the message content
func (b *Bot) attachment(content MessageContent) slack.Attachment {
	return attachments.Build(attachments.Options{
		Message:              unescapeNewLines(content.Message),
		Pretext:              unescapeNewLines(content.Pretext),
		Success:              content.Success,
		Payload:              content.Payload,
		IncludeContextFields: content.IncludeContextFields,
		Overrides:            content.Overrides,
		HideAuthorOnSuccess:  config.Truthy(b.config, config.HideAuthorOnSuccessKey),
	}, b.buildContext)
}

// channelName returns the channel with a # prefix unless it already starts with #, C or @
func channelName(channel string) string {
	if channel == "" {
		return channel
	}

	for _, prefix := range channelPrefixes {
		if strings.HasPrefix(channel, prefix) {
			return channel
		}
	}

	return "#" + channel
}

// unescapeNewLines turns literal \n sequences into new lines
func unescapeNewLines(s string) string {
	return strings.Replace(s, `\n`, "\n", -1)
}
