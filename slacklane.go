package slacklane

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/alexandre-normand/slacklane/buildcontext"
	"github.com/alexandre-normand/slacklane/config"
	"github.com/alexandre-normand/slacklane/slog"
	"github.com/pkg/errors"
	"github.com/slack-go/slack"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/metric"
)

const defaultName = "slacklane"

// Bot runs slacklane actions against the slack web api. It is safe for concurrent use
type Bot struct {
	name         string
	config       *viper.Viper
	api          SlackAPI
	httpClient   Doer
	buildContext buildcontext.BuildContext
	meter        metric.Meter
	logger       slog.SLogger
	reporter     slog.Reporter

	sharedValuesLock sync.RWMutex
	sharedValues     map[string]*Result
}

// Option defines an option for a Bot
type Option func(*Bot)

// OptionName sets the name of the bot, used as the name attribute of telemetry metrics.
// Defaults to slacklane
func OptionName(name string) Option {
	return func(b *Bot) {
		b.name = name
	}
}

// OptionSlackAPI sets the SlackAPI used instead of a slack.Client created from the configured
// token. Results of calls that don't go through http have a Status of 0
func OptionSlackAPI(api SlackAPI) Option {
	return func(b *Bot) {
		b.api = api
	}
}

// OptionHTTPClient sets the http client of the slack.Client. Defaults to an http.Client with
// the timeout configured with config.HTTPTimeoutKey
func OptionHTTPClient(client Doer) Option {
	return func(b *Bot) {
		b.httpClient = client
	}
}

// OptionBuildContext sets the build context the attachment context fields are read from.
// Defaults to a caching buildcontext.Git
func OptionBuildContext(bc buildcontext.BuildContext) Option {
	return func(b *Bot) {
		b.buildContext = bc
	}
}

// OptionMeter enables telemetry of slack api calls with the given meter
func OptionMeter(meter metric.Meter) Option {
	return func(b *Bot) {
		b.meter = meter
	}
}

// OptionLogger sets the logger
func OptionLogger(logger slog.SLogger) Option {
	return func(b *Bot) {
		b.logger = logger
	}
}

// OptionReporter sets the reporter the outcome of actions is reported to. Defaults to
// a reporter writing to the logger
func OptionReporter(reporter slog.Reporter) Option {
	return func(b *Bot) {
		b.reporter = reporter
	}
}

// New creates a new Bot. Unless a SlackAPI is given with OptionSlackAPI, a slack.Client is
// created with the token, api url and timeout from the configuration in which case the token
// is required
func New(v *viper.Viper, options ...Option) (b *Bot, err error) {
	b = new(Bot)
	b.name = defaultName
	b.config = v
	b.sharedValues = make(map[string]*Result)

	for _, opt := range options {
		opt(b)
	}

	if b.logger == nil {
		b.logger = slog.NewSLogger(log.New(os.Stderr, "slacklane: ", log.Lshortfile|log.LstdFlags), v.GetBool(config.DebugKey))
	}

	if b.reporter == nil {
		b.reporter = slog.NewReporter(b.logger)
	}

	if b.buildContext == nil {
		b.buildContext, err = buildcontext.NewCaching(v, buildcontext.NewGit(v, buildcontext.OptionLogger(b.logger)), b.logger)
		if err != nil {
			return nil, err
		}
	}

	if b.api == nil {
		token := v.GetString(config.TokenKey)
		if token == "" {
			return nil, errors.Errorf("missing slack bot token, set it with [%s]", config.TokenKey)
		}

		if b.httpClient == nil {
			b.httpClient = &http.Client{Timeout: v.GetDuration(config.HTTPTimeoutKey)}
		}

		slackOptions := []slack.Option{
			slack.OptionHTTPClient(newRecordingClient(b.httpClient)),
			slack.OptionDebug(v.GetBool(config.DebugKey)),
			slack.OptionLog(log.New(os.Stderr, "slack: ", log.Lshortfile|log.LstdFlags)),
		}

		if apiURL := v.GetString(config.APIURLKey); apiURL != "" {
			slackOptions = append(slackOptions, slack.OptionAPIURL(apiURL))
		}

		b.api = slack.New(token, slackOptions...)
	}

	if b.meter != nil {
		if b.api, err = NewSlackAPIWithTelemetry(b.api, b.name, b.meter); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Name returns the name of the bot
func (b *Bot) Name() string {
	return b.name
}

// run calls the slack api with a context recording the http exchange and turns the outcome
// into a Result. Values are what the SlackAPI returned and only serve as the Result of calls
// that don't go through http. Successful results are saved as the shared value for key
func (b *Bot) run(ctx context.Context, action string, key string, successMsg string, call func(ctx context.Context) (values map[string]interface{}, err error)) (r *Result, err error) {
	rctx, ex := withExchange(ctx)

	values, err := call(rctx)
	r = ex.result()

	if err != nil {
		err = errors.Wrapf(err, "%s failed", action)
		b.reporter.Error(err.Error())

		if r != nil {
			b.logger.Debugf("Slack responded to %s with status [%d] and body [%s]\n", action, r.Status, r.Body)
		}

		return r, err
	}

	if r == nil {
		r = synthesizedResult(values)
	}

	b.setSharedValue(key, r)
	b.reporter.Success(successMsg)

	return r, nil
}

// reject reports and returns an error for an invalid request
func (b *Bot) reject(action string, format string, args ...interface{}) (r *Result, err error) {
	err = errors.Errorf("invalid %s request: %s", action, fmt.Sprintf(format, args...))
	b.reporter.Error(err.Error())

	return nil, err
}
