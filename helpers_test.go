package slacklane_test

import (
	"context"
	"io"
	"log"

	"github.com/slack-go/slack"
)

func bg() context.Context {
	return context.Background()
}

func newLogger(w io.Writer) *log.Logger {
	return log.New(w, "", 0)
}

func slackFileUploadParameters(name string) slack.FileUploadParameters {
	return slack.FileUploadParameters{Filename: name, Channels: []string{"C1"}}
}

func slackGetFilesParameters(channel string) slack.GetFilesParameters {
	params := slack.NewGetFilesParameters()
	params.Channel = channel

	return params
}
