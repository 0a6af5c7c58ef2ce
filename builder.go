package slacklane

import (
	"github.com/alexandre-normand/slacklane/buildcontext"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/metric"
)

// Builder holds a slacklane bot to build
type Builder struct {
	bot *Bot
	err error
}

// NewBot returns a new Builder used to set up a new slacklane bot
func NewBot(v *viper.Viper, options ...Option) (sb *Builder) {
	sb = new(Builder)
	sb.bot, sb.err = New(v, options...)

	return sb
}

// WithBuildContext sets the build context of the bot
func (sb *Builder) WithBuildContext(bc buildcontext.BuildContext) *Builder {
	return sb.WithBuildContextErr(bc, nil)
}

// WithBuildContextErr sets a build context that has a creation function returning
// (BuildContext, error) on the bot (i.e. buildcontext.NewCaching)
func (sb *Builder) WithBuildContextErr(bc buildcontext.BuildContext, err error) *Builder {
	if sb.err == nil && err != nil {
		sb.err = err
	}

	if sb.err != nil {
		return sb
	}

	sb.bot.buildContext = bc

	return sb
}

// WithTelemetry decorates the slack api of the bot with telemetry metrics
func (sb *Builder) WithTelemetry(meter metric.Meter) *Builder {
	if sb.err != nil {
		return sb
	}

	sb.bot.meter = meter
	sb.bot.api, sb.err = NewSlackAPIWithTelemetry(sb.bot.api, sb.bot.name, meter)

	return sb
}

// Build returns the built bot. If there was an error during
// setup, the error is returned along with a nil bot
func (sb *Builder) Build() (b *Bot, err error) {
	if sb.err != nil {
		return nil, sb.err
	}

	return sb.bot, sb.err
}
