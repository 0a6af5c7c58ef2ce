package slacklane

// Shared value keys holding the last successful Result of each action
const (
	PostToSlackResult        = "POST_TO_SLACK_RESULT"
	UpdateSlackMessageResult = "UPDATE_SLACK_MESSAGE_RESULT"
	DeleteSlackMessageResult = "DELETE_SLACK_MESSAGE_RESULT"
	FileUploadToSlackResult  = "FILE_UPLOAD_TO_SLACK_RESULT"
	FetchFilesSlackResult    = "FETCH_FILES_SLACK_RESULT"
)

// SharedValue returns the last successful Result saved under key
func (b *Bot) SharedValue(key string) (r *Result, ok bool) {
	b.sharedValuesLock.RLock()
	defer b.sharedValuesLock.RUnlock()

	r, ok = b.sharedValues[key]
	return r, ok
}

func (b *Bot) setSharedValue(key string, r *Result) {
	b.sharedValuesLock.Lock()
	defer b.sharedValuesLock.Unlock()

	b.sharedValues[key] = r
}
