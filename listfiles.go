package slacklane

import (
	"context"

	"github.com/slack-go/slack"
)

const (
	listAction = "list files"

	defaultFileCount = 100
	defaultFilePage  = 1
)

// ListFiles lists files shared in a channel (see https://api.slack.com/methods/files.list).
// On success, the Result is saved as the FetchFilesSlackResult shared value
func (b *Bot) ListFiles(ctx context.Context, req ListFilesRequest) (r *Result, err error) {
	if req.Channel == "" {
		return b.reject(listAction, "channel is required")
	}

	params := slack.NewGetFilesParameters()
	params.Channel = req.Channel
	params.Count = defaultFileCount
	params.Page = defaultFilePage

	if req.Count > 0 {
		params.Count = req.Count
	}

	if req.Page > 0 {
		params.Page = req.Page
	}

	b.logger.Debugf("Listing files of [%s], page [%d] with [%d] files per page\n", params.Channel, params.Page, params.Count)

	return b.run(ctx, listAction, FetchFilesSlackResult, "Successfully fetched Slack files", func(ctx context.Context) (map[string]interface{}, error) {
		files, paging, err := b.api.GetFilesContext(ctx, params)

		return map[string]interface{}{"ok": true, "files": files, "paging": paging}, err
	})
}
