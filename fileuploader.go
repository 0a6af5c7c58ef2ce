package slacklane

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/slack-go/slack"
)

const uploadAction = "file upload"

// UploadOption defines an option on the slack.FileUploadParameters of an upload
type UploadOption func(params *slack.FileUploadParameters)

// UploadInThreadOption uploads the file as a reply to the message with the given thread timestamp
func UploadInThreadOption(threadTimestamp string) UploadOption {
	return func(p *slack.FileUploadParameters) {
		if threadTimestamp != "" {
			p.ThreadTimestamp = threadTimestamp
		}
	}
}

// UploadFile uploads a file and shares it in channels (see
// https://api.slack.com/methods/files.upload). On success, the Result is saved as the
// FileUploadToSlackResult shared value
func (b *Bot) UploadFile(ctx context.Context, req FileUploadRequest, options ...UploadOption) (r *Result, err error) {
	params, err := fileUploadParameters(req)
	if err != nil {
		return b.reject(uploadAction, "%v", err)
	}

	for _, opt := range options {
		opt(&params)
	}

	b.logger.Debugf("Uploading [%s] as [%s] of type [%s] to %v\n", params.File, params.Filename, params.Filetype, params.Channels)

	return b.run(ctx, uploadAction, FileUploadToSlackResult, "Successfully uploaded file to Slack!", func(ctx context.Context) (map[string]interface{}, error) {
		file, err := b.api.UploadFileContext(ctx, params)

		return map[string]interface{}{"ok": true, "file": file}, err
	})
}

// fileUploadParameters validates the request and derives the upload parameters from it
func fileUploadParameters(req FileUploadRequest) (params slack.FileUploadParameters, err error) {
	channels := splitChannels(req.Channels)
	if len(channels) == 0 {
		return params, errors.New("channels are required")
	}

	if strings.TrimSpace(req.FilePath) == "" {
		return params, errors.New("file path is required")
	}

	path, err := homedir.Expand(req.FilePath)
	if err != nil {
		return params, errors.Wrapf(err, "can't expand file path [%s]", req.FilePath)
	}

	name, fileType := fileNameAndType(path)
	if req.FileName != "" {
		name = req.FileName
	}

	if req.FileType != "" {
		fileType = req.FileType
	}

	return slack.FileUploadParameters{
		File:            path,
		Filename:        name,
		Filetype:        fileType,
		Title:           req.Title,
		InitialComment:  req.InitialComment,
		Channels:        channels,
		ThreadTimestamp: req.ThreadTimestamp,
	}, nil
}

// fileNameAndType returns the base name of the file without its extension and the extension
// without its dot. Dot files like .env have no extension
func fileNameAndType(path string) (name string, fileType string) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)

	name = strings.TrimSuffix(base, ext)
	if name == "" {
		return base, ""
	}

	return name, strings.TrimPrefix(ext, ".")
}

// splitChannels splits comma-separated channel lists and trims every channel
func splitChannels(channels []string) (split []string) {
	split = make([]string, 0, len(channels))
	for _, list := range channels {
		for _, c := range strings.Split(list, ",") {
			if c = strings.TrimSpace(c); c != "" {
				split = append(split, c)
			}
		}
	}

	return split
}
