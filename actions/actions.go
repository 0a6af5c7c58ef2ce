/*
Package actions provides a fluent API for creating slacklane action requests with the same
defaults as the command line. A typical usage looks like:

	import (
		"github.com/alexandre-normand/slacklane"
		"github.com/alexandre-normand/slacklane/actions"
		"github.com/alexandre-normand/slacklane/attachments"
	)

	func notifyRelease(ctx context.Context, b *slacklane.Bot) (r *slacklane.Result, err error) {
		return b.PostMessage(ctx, actions.NewPost().
			WithChannel("#releases").
			WithContent(actions.NewMessageContent().
				WithMessage("App successfully released!").
				WithPayloadEntry("Built by", "Jenkins").
				WithContextFields(attachments.GitBranch, attachments.GitAuthor).
				WithOverride("thumb_url", "http://example.com/path/to/thumb.png").
				Build()).
			Build())
	}
*/
package actions

import (
	"github.com/alexandre-normand/slacklane"
	"github.com/alexandre-normand/slacklane/attachments"
	"github.com/alexandre-normand/slacklane/config"
)

// MessageContentBuilder holds the message content to build
type MessageContentBuilder struct {
	content slacklane.MessageContent
}

// PostBuilder holds the post request to build
type PostBuilder struct {
	req slacklane.PostMessageRequest
}

// UpdateBuilder holds the update request to build
type UpdateBuilder struct {
	req slacklane.UpdateMessageRequest
}

// DeleteBuilder holds the delete request to build
type DeleteBuilder struct {
	req slacklane.DeleteMessageRequest
}

// FileUploadBuilder holds the file upload request to build
type FileUploadBuilder struct {
	req slacklane.FileUploadRequest
}

// FileListingBuilder holds the file listing request to build
type FileListingBuilder struct {
	req slacklane.ListFilesRequest
}

// NewMessageContent returns a new MessageContentBuilder for a successful message including
// all context fields
func NewMessageContent() (mcb *MessageContentBuilder) {
	mcb = new(MessageContentBuilder)
	mcb.content = slacklane.MessageContent{Success: true}

	return mcb
}

// WithMessage sets the message text
func (mcb *MessageContentBuilder) WithMessage(message string) *MessageContentBuilder {
	mcb.content.Message = message
	return mcb
}

// WithPretext sets the text appearing above the attachment
func (mcb *MessageContentBuilder) WithPretext(pretext string) *MessageContentBuilder {
	mcb.content.Pretext = pretext
	return mcb
}

// WithSuccess sets whether the message reports a success or a failure
func (mcb *MessageContentBuilder) WithSuccess(success bool) *MessageContentBuilder {
	mcb.content.Success = success
	return mcb
}

// WithPayload sets the payload, replacing any entry added before
func (mcb *MessageContentBuilder) WithPayload(payload attachments.Payload) *MessageContentBuilder {
	mcb.content.Payload = payload
	return mcb
}

// WithPayloadEntry appends a payload entry
func (mcb *MessageContentBuilder) WithPayloadEntry(key string, value interface{}) *MessageContentBuilder {
	mcb.content.Payload = append(mcb.content.Payload, attachments.PayloadEntry{Key: key, Value: value})
	return mcb
}

// WithContextFields whitelists the given context fields. Calling it without fields excludes
// all context fields
func (mcb *MessageContentBuilder) WithContextFields(fields ...attachments.ContextField) *MessageContentBuilder {
	mcb.content.IncludeContextFields = attachments.NewContextFieldSet(fields...)
	return mcb
}

// WithContextFieldSet sets the context field whitelist. A nil set includes all context fields
func (mcb *MessageContentBuilder) WithContextFieldSet(fields attachments.ContextFieldSet) *MessageContentBuilder {
	mcb.content.IncludeContextFields = fields
	return mcb
}

// WithOverride overrides an attachment property with a value
func (mcb *MessageContentBuilder) WithOverride(key string, value interface{}) *MessageContentBuilder {
	return mcb.withOverride(key, attachments.Value(value))
}

// WithUnsetOverride declares an override for an attachment property that keeps its current value
func (mcb *MessageContentBuilder) WithUnsetOverride(key string) *MessageContentBuilder {
	return mcb.withOverride(key, attachments.Unset())
}

// WithOverrides adds the attachment overrides to the ones set before
func (mcb *MessageContentBuilder) WithOverrides(overrides attachments.Overrides) *MessageContentBuilder {
	for k, o := range overrides {
		mcb.withOverride(k, o)
	}

	return mcb
}

func (mcb *MessageContentBuilder) withOverride(key string, o attachments.Override) *MessageContentBuilder {
	if mcb.content.Overrides == nil {
		mcb.content.Overrides = make(attachments.Overrides)
	}

	mcb.content.Overrides[key] = o
	return mcb
}

// Build returns the MessageContent
func (mcb *MessageContentBuilder) Build() slacklane.MessageContent {
	return mcb.content
}

// NewPost returns a new PostBuilder with the default username and icon url and a successful
// message content
func NewPost() (pb *PostBuilder) {
	pb = new(PostBuilder)
	pb.req = slacklane.PostMessageRequest{
		Username:       config.DefaultUsername,
		IconURL:        config.DefaultIconURL,
		MessageContent: NewMessageContent().Build(),
	}

	return pb
}

// WithChannel sets the #channel, @username or channel id to post to
func (pb *PostBuilder) WithChannel(channel string) *PostBuilder {
	pb.req.Channel = channel
	return pb
}

// WithUsername sets the username the message is posted as
func (pb *PostBuilder) WithUsername(username string) *PostBuilder {
	pb.req.Username = username
	return pb
}

// WithIconURL sets the icon the message is posted with
func (pb *PostBuilder) WithIconURL(iconURL string) *PostBuilder {
	pb.req.IconURL = iconURL
	return pb
}

// InThread posts the message as a reply to the message with the given timestamp
func (pb *PostBuilder) InThread(threadTimestamp string) *PostBuilder {
	pb.req.ThreadTimestamp = threadTimestamp
	return pb
}

// WithContent sets the message content
func (pb *PostBuilder) WithContent(content slacklane.MessageContent) *PostBuilder {
	pb.req.MessageContent = content
	return pb
}

// WithMessage sets the message text of the content
func (pb *PostBuilder) WithMessage(message string) *PostBuilder {
	pb.req.Message = message
	return pb
}

// Build returns the PostMessageRequest
func (pb *PostBuilder) Build() slacklane.PostMessageRequest {
	return pb.req
}

// NewUpdate returns a new UpdateBuilder for the message at timestamp in channel
func NewUpdate(channel string, timestamp string) (ub *UpdateBuilder) {
	ub = new(UpdateBuilder)
	ub.req = slacklane.UpdateMessageRequest{Channel: channel, Timestamp: timestamp, MessageContent: NewMessageContent().Build()}

	return ub
}

// WithContent sets the message content
func (ub *UpdateBuilder) WithContent(content slacklane.MessageContent) *UpdateBuilder {
	ub.req.MessageContent = content
	return ub
}

// WithMessage sets the message text of the content
func (ub *UpdateBuilder) WithMessage(message string) *UpdateBuilder {
	ub.req.Message = message
	return ub
}

// Build returns the UpdateMessageRequest
func (ub *UpdateBuilder) Build() slacklane.UpdateMessageRequest {
	return ub.req
}

// NewDelete returns a new DeleteBuilder for the message at timestamp in channel
func NewDelete(channel string, timestamp string) (db *DeleteBuilder) {
	db = new(DeleteBuilder)
	db.req = slacklane.DeleteMessageRequest{Channel: channel, Timestamp: timestamp}

	return db
}

// Build returns the DeleteMessageRequest
func (db *DeleteBuilder) Build() slacklane.DeleteMessageRequest {
	return db.req
}

// NewFileUpload returns a new FileUploadBuilder for the file at filePath
func NewFileUpload(filePath string) (fub *FileUploadBuilder) {
	fub = new(FileUploadBuilder)
	fub.req = slacklane.FileUploadRequest{FilePath: filePath}

	return fub
}

// WithChannels adds channels to share the file in
func (fub *FileUploadBuilder) WithChannels(channels ...string) *FileUploadBuilder {
	fub.req.Channels = append(fub.req.Channels, channels...)
	return fub
}

// WithFileName sets the file name instead of the file's base name without extension
func (fub *FileUploadBuilder) WithFileName(name string) *FileUploadBuilder {
	fub.req.FileName = name
	return fub
}

// WithFileType sets the file type instead of the file's extension
func (fub *FileUploadBuilder) WithFileType(fileType string) *FileUploadBuilder {
	fub.req.FileType = fileType
	return fub
}

// WithTitle sets the title of the file
func (fub *FileUploadBuilder) WithTitle(title string) *FileUploadBuilder {
	fub.req.Title = title
	return fub
}

// WithInitialComment sets the message introducing the file
func (fub *FileUploadBuilder) WithInitialComment(comment string) *FileUploadBuilder {
	fub.req.InitialComment = comment
	return fub
}

// InThread uploads the file as a reply to the message with the given timestamp
func (fub *FileUploadBuilder) InThread(threadTimestamp string) *FileUploadBuilder {
	fub.req.ThreadTimestamp = threadTimestamp
	return fub
}

// Build returns the FileUploadRequest
func (fub *FileUploadBuilder) Build() slacklane.FileUploadRequest {
	return fub.req
}

// NewFileListing returns a new FileListingBuilder for the first page of 100 files of channel
func NewFileListing(channel string) (flb *FileListingBuilder) {
	flb = new(FileListingBuilder)
	flb.req = slacklane.ListFilesRequest{Channel: channel, Count: 100, Page: 1}

	return flb
}

// WithCount sets the number of files per page
func (flb *FileListingBuilder) WithCount(count int) *FileListingBuilder {
	flb.req.Count = count
	return flb
}

// WithPage sets the page number, starting at 1
func (flb *FileListingBuilder) WithPage(page int) *FileListingBuilder {
	flb.req.Page = page
	return flb
}

// Build returns the ListFilesRequest
func (flb *FileListingBuilder) Build() slacklane.ListFilesRequest {
	return flb.req
}
