package config

// Option defaults
const (
	DefaultUsername = "fastlane"
	DefaultIconURL  = "https://fastlane.tools/assets/img/fastlane_icon.png"
	defaultCount    = "100"
	defaultPage     = "1"
)

// tokenOption returns the bot token option reading from the action-specific environment variable
// first and falling back to SLACK_API_TOKEN
func tokenOption(envName string) Option {
	return Option{Key: TokenKey, EnvNames: []string{envName, SlackAPITokenEnv}, Description: "Slack bot token", Sensitive: true, Required: true}
}

// messageContentOptions returns the options shared by actions sending an attachment
func messageContentOptions(envPrefix string) []Option {
	return []Option{
		{Key: PretextKey, EnvNames: []string{envPrefix + "_PRETEXT"}, Description: "Optional text that appears above the message attachment block. This supports the standard Slack markup language"},
		{Key: MessageKey, EnvNames: []string{envPrefix + "_MESSAGE"}, Description: "The message that should be displayed on Slack"},
		{Key: PayloadKey, EnvNames: []string{envPrefix + "_PAYLOAD"}, Description: "Additional information to add to the message as a JSON or YAML mapping of any key to any value"},
		{Key: DefaultPayloadsKey, EnvNames: []string{envPrefix + "_DEFAULT_PAYLOADS"}, Description: "Comma-separated whitelist of default payloads among lane, test_result, git_branch, git_author, last_git_commit, last_git_commit_hash. Leave unset for all, set empty for none"},
		{Key: AttachmentPropertiesKey, EnvNames: []string{envPrefix + "_ATTACHMENT_PROPERTIES"}, Description: "JSON or YAML mapping deep merged into the slack attachment, see https://api.slack.com/docs/attachments"},
		{Key: SuccessKey, EnvNames: []string{envPrefix + "_SUCCESS"}, Description: "Was this successful? (true/false)", Default: true},
	}
}

// PostToSlackOptions are the options of the post action
var PostToSlackOptions = append([]Option{
	tokenOption("FL_POST_TO_SLACK_BOT_TOKEN"),
	{Key: ChannelKey, EnvNames: []string{"FL_POST_TO_SLACK_CHANNEL"}, Description: "#channel or @username"},
	{Key: UsernameKey, EnvNames: []string{"FL_SLACK_USERNAME"}, Description: "Overrides the bot's username (chat:write.customize scope required)", Default: DefaultUsername},
	{Key: IconURLKey, EnvNames: []string{"FL_SLACK_ICON_URL"}, Description: "Overrides the bot's image (chat:write.customize scope required)", Default: DefaultIconURL},
	{Key: ThreadTimestampKey, EnvNames: []string{"FL_POST_TO_SLACK_THREAD_TS"}, Description: "Another message's ts value to make this message a reply"},
}, messageContentOptions("FL_POST_TO_SLACK")...)

// UpdateSlackMessageOptions are the options of the update action
var UpdateSlackMessageOptions = append([]Option{
	tokenOption("FL_UPDATE_SLACK_MESSAGE_BOT_TOKEN"),
	{Key: TimestampKey, EnvNames: []string{"FL_UPDATE_SLACK_MESSAGE_TS"}, Description: "Timestamp of the message to be updated", Required: true},
	{Key: ChannelKey, EnvNames: []string{"FL_UPDATE_SLACK_MESSAGE_CHANNEL"}, Description: "Slack channel i.e C1234567890", Required: true},
}, messageContentOptions("FL_UPDATE_SLACK_MESSAGE")...)

// DeleteSlackMessageOptions are the options of the delete action
var DeleteSlackMessageOptions = []Option{
	tokenOption("FL_DELETE_SLACK_MESSAGE_BOT_TOKEN"),
	{Key: TimestampKey, EnvNames: []string{"FL_DELETE_SLACK_MESSAGE_TS"}, Description: "Timestamp of the message to be deleted", Required: true},
	{Key: ChannelKey, EnvNames: []string{"FL_DELETE_SLACK_MESSAGE_CHANNEL"}, Description: "Slack channel_id containing the message to be deleted. i.e C1234567890", Required: true},
}

// FileUploadToSlackOptions are the options of the file upload action
var FileUploadToSlackOptions = []Option{
	tokenOption("FL_FILE_UPLOAD_TO_SLACK_BOT_TOKEN"),
	{Key: ChannelsKey, EnvNames: []string{"FL_FILE_UPLOAD_TO_SLACK_CHANNELS", "FL_FETCH_FILES_SLACK_CHANNELS"}, Description: "Comma-separated list of slack #channel names where the file will be shared", Required: true},
	{Key: FilePathKey, EnvNames: []string{"FL_FILE_UPLOAD_TO_SLACK_FILE_PATH"}, Description: "Path of the file to upload", Required: true},
	{Key: FileNameKey, EnvNames: []string{"FL_FILE_UPLOAD_TO_SLACK_FILE_NAME"}, Description: "Optional filename of the file. Defaults to the file's base name without extension"},
	{Key: FileTypeKey, EnvNames: []string{"FL_FILE_UPLOAD_TO_SLACK_FILE_TYPE"}, Description: "Optional filetype of the file. Defaults to the file's extension"},
	{Key: TitleKey, EnvNames: []string{"FL_FILE_UPLOAD_TO_SLACK_TITLE"}, Description: "Optional title of the file"},
	{Key: InitialCommentKey, EnvNames: []string{"FL_FILE_UPLOAD_TO_SLACK_INITIAL_COMMENT"}, Description: "Optional message text introducing the file"},
	{Key: ThreadTimestampKey, EnvNames: []string{"FL_FILE_UPLOAD_TO_SLACK_THREAD_TS"}, Description: "Another message's ts value to upload this file as a reply"},
}

// FetchFilesSlackOptions are the options of the file listing action
var FetchFilesSlackOptions = []Option{
	tokenOption("FL_FETCH_FILES_SLACK_BOT_TOKEN"),
	{Key: ChannelKey, EnvNames: []string{"FL_FETCH_FILES_SLACK_CHANNEL"}, Description: "Slack #channel ID", Required: true},
	{Key: CountKey, EnvNames: []string{"FL_FETCH_FILES_SLACK_COUNT"}, Description: "Number of items to return per page", Default: defaultCount},
	{Key: PageKey, EnvNames: []string{"FL_FETCH_FILES_SLACK_PAGE"}, Description: "Page number of results to return", Default: defaultPage},
}
