package slacklane

import (
	"context"

	"github.com/slack-go/slack"
)

// messagePoster is implemented by any value that has the PostMessageContext method.
//
// slack.Client implements this interface
type messagePoster interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (rChannelID string, rTimestamp string, err error)
}

// messageUpdater is implemented by any value that has the UpdateMessageContext method.
//
// slack.Client implements this interface
type messageUpdater interface {
	UpdateMessageContext(ctx context.Context, channelID string, timestamp string, options ...slack.MsgOption) (rChannelID string, rTimestamp string, rText string, err error)
}

// messageDeleter is implemented by any value that has the DeleteMessageContext method.
//
// slack.Client implements this interface
type messageDeleter interface {
	DeleteMessageContext(ctx context.Context, channelID string, timestamp string) (rChannelID string, rTimestamp string, err error)
}

// fileUploader is implemented by any value that has the UploadFileContext method.
//
// slack.Client implements this interface
type fileUploader interface {
	UploadFileContext(ctx context.Context, params slack.FileUploadParameters) (file *slack.File, err error)
}

// fileLister is implemented by any value that has the GetFilesContext method.
//
// slack.Client implements this interface
type fileLister interface {
	GetFilesContext(ctx context.Context, params slack.GetFilesParameters) (files []slack.File, paging *slack.Paging, err error)
}

// SlackAPI encompasses all the slack web api methods used by slacklane actions. slack.Client
// implements it. The main purpose is a slight decoupling of the slack.Client in order to
// decorate it (i.e. with telemetry) and to test actions without a slack server
type SlackAPI interface {
	messagePoster
	messageUpdater
	messageDeleter
	fileUploader
	fileLister
}
