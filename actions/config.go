package actions

import (
	"strings"

	"github.com/alexandre-normand/slacklane"
	"github.com/alexandre-normand/slacklane/attachments"
	"github.com/alexandre-normand/slacklane/config"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// PostFromConfig returns the post request described by the config.PostToSlackOptions values
func PostFromConfig(v *viper.Viper) (req slacklane.PostMessageRequest, err error) {
	content, err := contentFromConfig(v)
	if err != nil {
		return req, err
	}

	return NewPost().
		WithChannel(v.GetString(config.ChannelKey)).
		WithUsername(v.GetString(config.UsernameKey)).
		WithIconURL(v.GetString(config.IconURLKey)).
		InThread(v.GetString(config.ThreadTimestampKey)).
		WithContent(content).
		Build(), nil
}

// UpdateFromConfig returns the update request described by the config.UpdateSlackMessageOptions values
func UpdateFromConfig(v *viper.Viper) (req slacklane.UpdateMessageRequest, err error) {
	content, err := contentFromConfig(v)
	if err != nil {
		return req, err
	}

	return NewUpdate(v.GetString(config.ChannelKey), v.GetString(config.TimestampKey)).
		WithContent(content).
		Build(), nil
}

// DeleteFromConfig returns the delete request described by the config.DeleteSlackMessageOptions values
func DeleteFromConfig(v *viper.Viper) (req slacklane.DeleteMessageRequest) {
	return NewDelete(v.GetString(config.ChannelKey), v.GetString(config.TimestampKey)).Build()
}

// FileUploadFromConfig returns the upload request described by the config.FileUploadToSlackOptions values
func FileUploadFromConfig(v *viper.Viper) (req slacklane.FileUploadRequest) {
	return NewFileUpload(v.GetString(config.FilePathKey)).
		WithChannels(listValue(v, config.ChannelsKey)).
		WithFileName(v.GetString(config.FileNameKey)).
		WithFileType(v.GetString(config.FileTypeKey)).
		WithTitle(v.GetString(config.TitleKey)).
		WithInitialComment(v.GetString(config.InitialCommentKey)).
		InThread(v.GetString(config.ThreadTimestampKey)).
		Build()
}

// FileListingFromConfig returns the file listing request described by the config.FetchFilesSlackOptions values
func FileListingFromConfig(v *viper.Viper) (req slacklane.ListFilesRequest, err error) {
	flb := NewFileListing(v.GetString(config.ChannelKey))

	if raw := strings.TrimSpace(v.GetString(config.CountKey)); raw != "" {
		count, err := cast.ToIntE(raw)
		if err != nil {
			return req, errors.Wrapf(err, "invalid [%s] value [%s]", config.CountKey, raw)
		}

		flb.WithCount(count)
	}

	if raw := strings.TrimSpace(v.GetString(config.PageKey)); raw != "" {
		page, err := cast.ToIntE(raw)
		if err != nil {
			return req, errors.Wrapf(err, "invalid [%s] value [%s]", config.PageKey, raw)
		}

		flb.WithPage(page)
	}

	return flb.Build(), nil
}

// contentFromConfig returns the message content of the config.PostToSlackOptions or
// config.UpdateSlackMessageOptions values. Unset default payloads include all context fields
func contentFromConfig(v *viper.Viper) (content slacklane.MessageContent, err error) {
	mcb := NewMessageContent().
		WithMessage(v.GetString(config.MessageKey)).
		WithPretext(v.GetString(config.PretextKey))

	if v.IsSet(config.SuccessKey) {
		raw := v.Get(config.SuccessKey)
		success, err := cast.ToBoolE(raw)
		if err != nil {
			return content, errors.Wrapf(err, "invalid [%s] value [%v]", config.SuccessKey, raw)
		}

		mcb.WithSuccess(success)
	}

	payload, err := attachments.ParsePayload(v.GetString(config.PayloadKey))
	if err != nil {
		return content, err
	}

	mcb.WithPayload(payload)

	if v.IsSet(config.DefaultPayloadsKey) {
		fields, err := attachments.ParseContextFields(listValue(v, config.DefaultPayloadsKey))
		if err != nil {
			return content, err
		}

		mcb.WithContextFieldSet(fields)
	}

	overrides, err := attachments.ParseOverrides(v.GetString(config.AttachmentPropertiesKey))
	if err != nil {
		return content, err
	}

	return mcb.WithOverrides(overrides).Build(), nil
}

// listValue returns the value of key as a comma-separated list whether it's set as a list or
// as a string
func listValue(v *viper.Viper, key string) string {
	switch l := v.Get(key).(type) {
	case []string:
		return strings.Join(l, ",")
	case []interface{}:
		return strings.Join(cast.ToStringSlice(l), ",")
	default:
		return cast.ToString(l)
	}
}
