// Package capture provides a SlackAPI captor recording slacklane calls for validation in tests
package capture

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/slack-go/slack"
)

// Message holds a captured message post, update or delete
type Message struct {
	Channel   string
	Timestamp string

	// Values are the form values slack would have received
	Values url.Values

	// Attachments are the decoded attachments of the message
	Attachments []slack.Attachment
}

// SlackCaptor captures slack api calls for post-execution validation. It implements
// slacklane.SlackAPI
type SlackCaptor struct {
	sync.Mutex

	Posts        []Message
	Updates      []Message
	Deletes      []Message
	FileUploads  []slack.FileUploadParameters
	FileListings []slack.GetFilesParameters

	// Files are returned when listing files
	Files []slack.File

	// Err, when set, is returned by every call after it's been captured
	Err error

	currentID int
}

// NewSlackCaptor returns a new SlackCaptor with initialized captures
func NewSlackCaptor() (sc *SlackCaptor) {
	sc = new(SlackCaptor)
	sc.Posts = make([]Message, 0)
	sc.Updates = make([]Message, 0)
	sc.Deletes = make([]Message, 0)
	sc.FileUploads = make([]slack.FileUploadParameters, 0)
	sc.FileListings = make([]slack.GetFilesParameters, 0)
	sc.Files = make([]slack.File, 0)

	return sc
}

// PostMessageContext captures a posted message and returns a new timestamp for it
func (sc *SlackCaptor) PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (rChannelID string, rTimestamp string, err error) {
	sc.Lock()
	defer sc.Unlock()

	m := newMessage(channelID, sc.nextTimestamp(), options...)
	sc.Posts = append(sc.Posts, m)

	return m.Channel, m.Timestamp, sc.Err
}

// UpdateMessageContext captures a message update
func (sc *SlackCaptor) UpdateMessageContext(ctx context.Context, channelID string, timestamp string, options ...slack.MsgOption) (rChannelID string, rTimestamp string, rText string, err error) {
	sc.Lock()
	defer sc.Unlock()

	m := newMessage(channelID, timestamp, options...)
	sc.Updates = append(sc.Updates, m)

	return m.Channel, m.Timestamp, m.Values.Get("text"), sc.Err
}

// DeleteMessageContext captures a message deletion
func (sc *SlackCaptor) DeleteMessageContext(ctx context.Context, channelID string, timestamp string) (rChannelID string, rTimestamp string, err error) {
	sc.Lock()
	defer sc.Unlock()

	sc.Deletes = append(sc.Deletes, Message{Channel: channelID, Timestamp: timestamp, Values: url.Values{}})

	return channelID, timestamp, sc.Err
}

// UploadFileContext tracks a file upload and returns a file with a new id
func (sc *SlackCaptor) UploadFileContext(ctx context.Context, params slack.FileUploadParameters) (file *slack.File, err error) {
	sc.Lock()
	defer sc.Unlock()

	sc.FileUploads = append(sc.FileUploads, params)
	if sc.Err != nil {
		return nil, sc.Err
	}

	file = new(slack.File)
	file.ID = strconv.Itoa(sc.currentID)
	file.Name = params.Filename
	file.Filetype = params.Filetype
	file.Title = params.Title
	file.Channels = params.Channels
	file.Created = currentJSONTime()

	// Increment id for the next upload
	sc.currentID = sc.currentID + 1

	return file, nil
}

// GetFilesContext tracks a file listing and returns the page of Files it asks for
func (sc *SlackCaptor) GetFilesContext(ctx context.Context, params slack.GetFilesParameters) (files []slack.File, paging *slack.Paging, err error) {
	sc.Lock()
	defer sc.Unlock()

	sc.FileListings = append(sc.FileListings, params)
	if sc.Err != nil {
		return nil, nil, sc.Err
	}

	paging = &slack.Paging{Count: params.Count, Total: len(sc.Files), Page: params.Page}
	if params.Count > 0 {
		paging.Pages = (len(sc.Files) + params.Count - 1) / params.Count
	}

	start := (params.Page - 1) * params.Count
	end := start + params.Count
	if start < 0 || start > len(sc.Files) {
		return []slack.File{}, paging, nil
	}

	if end > len(sc.Files) {
		end = len(sc.Files)
	}

	return sc.Files[start:end], paging, nil
}

// nextTimestamp returns a new message timestamp
func (sc *SlackCaptor) nextTimestamp() string {
	sc.currentID = sc.currentID + 1
	return fmt.Sprintf("%d.%06d", time.Now().Unix(), sc.currentID)
}

// newMessage applies the message options to capture the values slack would receive
func newMessage(channelID string, timestamp string, options ...slack.MsgOption) (m Message) {
	m = Message{Channel: channelID, Timestamp: timestamp, Values: url.Values{}, Attachments: make([]slack.Attachment, 0)}

	_, values, err := slack.UnsafeApplyMsgOptions("", channelID, "", options...)
	if err != nil {
		return m
	}

	m.Values = values
	if raw := values.Get("attachments"); raw != "" {
		json.Unmarshal([]byte(raw), &m.Attachments)
	}

	return m
}

// currentJSONTime creates a JSONTime value with the current time
func currentJSONTime() (now slack.JSONTime) {
	return slack.JSONTime(time.Now().Unix())
}
