package slacklane

import (
	"github.com/alexandre-normand/slacklane/attachments"
)

// MessageContent holds what goes into the attachment of a posted or updated message
type MessageContent struct {
	// Message is the attachment text. Literal \n sequences are turned into new lines
	Message string

	// Pretext appears above the attachment. Literal \n sequences are turned into new lines
	Pretext string

	Success bool
	Payload attachments.Payload

	// IncludeContextFields is the whitelist of context fields. nil includes all of them
	IncludeContextFields attachments.ContextFieldSet

	Overrides attachments.Overrides
}

// PostMessageRequest holds the parameters of PostMessage
type PostMessageRequest struct {
	// Channel is a #channel, @username or channel id. Names without a prefix are taken as
	// #channel names
	Channel string

	Username        string
	IconURL         string
	ThreadTimestamp string

	MessageContent
}

// UpdateMessageRequest holds the parameters of UpdateMessage
type UpdateMessageRequest struct {
	Channel   string
	Timestamp string

	MessageContent
}

// DeleteMessageRequest holds the parameters of DeleteMessage
type DeleteMessageRequest struct {
	Channel   string
	Timestamp string
}

// FileUploadRequest holds the parameters of UploadFile
type FileUploadRequest struct {
	// Channels the file is shared in. Entries may be comma-separated lists
	Channels []string

	// FilePath is the path of the file to upload. A leading ~ is expanded to the home directory
	FilePath string

	// FileName defaults to the base name of the file without its extension
	FileName string

	// FileType defaults to the extension of the file
	FileType string

	Title           string
	InitialComment  string
	ThreadTimestamp string
}

// ListFilesRequest holds the parameters of ListFiles
type ListFilesRequest struct {
	Channel string

	// Count is the number of files per page. Defaults to 100
	Count int

	// Page is the page number, starting at 1. Defaults to 1
	Page int
}
