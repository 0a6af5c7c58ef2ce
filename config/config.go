// Package config holds the slacklane configuration keys, their defaults and the option
// schemas of every action along with the environment variables each option reads from
package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Global configuration keys
const (
	TokenKey                 = "token"                 // The slack bot token, string value
	DebugKey                 = "debug"                 // Debug mode, boolean value
	APIURLKey                = "apiURL"                // The slack web api base url, string value. Defaults to https://slack.com/api/
	HTTPTimeoutKey           = "httpTimeout"           // Timeout of slack api calls, duration value. Defaults to 30s
	GitTimeoutKey            = "gitTimeout"            // Timeout of each git command run to resolve the build context, duration value. Defaults to 5s
	BuildContextCacheSizeKey = "buildContextCacheSize" // The number of build context values to cache, int value. 0 disables caching. Defaults to 16
	HideAuthorOnSuccessKey   = "hideAuthorOnSuccess"   // Only show the git author when the build failed, truthy string value
	LaneNameKey              = "laneName"              // The name of the current lane, string value
)

// Action option keys
const (
	ChannelKey              = "channel"
	ChannelsKey             = "channels"
	TimestampKey            = "ts"
	ThreadTimestampKey      = "thread_ts"
	UsernameKey             = "username"
	IconURLKey              = "icon_url"
	PretextKey              = "pretext"
	MessageKey              = "message"
	PayloadKey              = "payload"
	DefaultPayloadsKey      = "default_payloads"
	AttachmentPropertiesKey = "attachment_properties"
	SuccessKey              = "success"
	FilePathKey             = "file_path"
	FileNameKey             = "file_name"
	FileTypeKey             = "file_type"
	TitleKey                = "title"
	InitialCommentKey       = "initial_comment"
	CountKey                = "count"
	PageKey                 = "page"
)

// Environment variables read by global keys
const (
	SlackAPITokenEnv       = "SLACK_API_TOKEN"
	SlackAPIURLEnv         = "SLACK_API_URL"
	DebugEnv               = "SLACKLANE_DEBUG"
	HideAuthorOnSuccessEnv = "FASTLANE_SLACK_HIDE_AUTHOR_ON_SUCCESS"
	LaneNameEnv            = "FASTLANE_LANE_NAME"
)

const (
	defaultAPIURL                = "https://slack.com/api/"
	defaultHTTPTimeout           = time.Duration(30) * time.Second
	defaultGitTimeout            = time.Duration(5) * time.Second
	defaultBuildContextCacheSize = 16
)

// Values considered false for truthy environment toggles
var falseyValues = map[string]bool{"no": true, "false": true, "off": true, "0": true}

// NewViperWithDefaults creates a new viper instance with defaults for all global keys
func NewViperWithDefaults() (v *viper.Viper) {
	v = viper.New()
	return LayerConfigWithDefaults(v)
}

// LayerConfigWithDefaults sets the defaults of all global keys on an existing viper
// instance. Values already set take precedence
func LayerConfigWithDefaults(v *viper.Viper) (lv *viper.Viper) {
	v.SetDefault(DebugKey, false)
	v.SetDefault(APIURLKey, defaultAPIURL)
	v.SetDefault(HTTPTimeoutKey, defaultHTTPTimeout)
	v.SetDefault(GitTimeoutKey, defaultGitTimeout)
	v.SetDefault(BuildContextCacheSizeKey, defaultBuildContextCacheSize)

	return v
}

// BindEnvironment binds global keys to their environment variables. Empty environment
// variables count as set so that an empty list of default payloads can be expressed
func BindEnvironment(v *viper.Viper) (err error) {
	v.AllowEmptyEnv(true)

	bindings := map[string][]string{
		TokenKey:               {SlackAPITokenEnv},
		APIURLKey:              {SlackAPIURLEnv},
		DebugKey:               {DebugEnv},
		HideAuthorOnSuccessKey: {HideAuthorOnSuccessEnv},
		LaneNameKey:            {LaneNameEnv},
	}

	for key, envNames := range bindings {
		if err = v.BindEnv(append([]string{key}, envNames...)...); err != nil {
			return errors.Wrapf(err, "failed to bind key [%s] to environment %v", key, envNames)
		}
	}

	return nil
}

// Truthy returns true if the key is set to a value that isn't one of no, false, off or 0
// (case insensitive)
func Truthy(v *viper.Viper, key string) bool {
	if !v.IsSet(key) {
		return false
	}

	return !falseyValues[strings.ToLower(strings.TrimSpace(v.GetString(key)))]
}

// Option describes an action option: its configuration key, the environment variables it
// reads from (first one set wins) and how it's documented
type Option struct {
	Key         string
	EnvNames    []string
	Description string
	Default     interface{}
	Sensitive   bool
	Required    bool
}

// FlagName returns the command-line flag name of the option
func (o Option) FlagName() string {
	if o.Key == TokenKey {
		return "api-token"
	}

	return strings.Replace(o.Key, "_", "-", -1)
}

// Usage returns the flag usage string, listing the environment variables
func (o Option) Usage() string {
	if len(o.EnvNames) == 0 {
		return o.Description
	}

	return o.Description + " (env: " + strings.Join(o.EnvNames, ", ") + ")"
}

// BindOptions registers a flag for every option on the flag set and binds the option key to
// that flag and to the option's environment variables. Option defaults are set as viper
// defaults so that an unset flag never shadows them
func BindOptions(v *viper.Viper, flags *pflag.FlagSet, options []Option) (err error) {
	v.AllowEmptyEnv(true)

	for _, o := range options {
		flags.String(o.FlagName(), "", o.Usage())

		if err = v.BindPFlag(o.Key, flags.Lookup(o.FlagName())); err != nil {
			return errors.Wrapf(err, "failed to bind flag [%s]", o.FlagName())
		}

		if len(o.EnvNames) > 0 {
			if err = v.BindEnv(append([]string{o.Key}, o.EnvNames...)...); err != nil {
				return errors.Wrapf(err, "failed to bind key [%s] to environment %v", o.Key, o.EnvNames)
			}
		}

		if o.Default != nil {
			v.SetDefault(o.Key, o.Default)
		}
	}

	return nil
}

// Validate returns an error naming the first required option without a value
func Validate(v *viper.Viper, options []Option) (err error) {
	for _, o := range options {
		if o.Required && strings.TrimSpace(v.GetString(o.Key)) == "" {
			return errors.Errorf("missing required option [%s], set it with --%s or one of %v", o.Key, o.FlagName(), o.EnvNames)
		}
	}

	return nil
}
