package slacklane

// This decorator follows the gowrap opentelemetry template, ported to the otel v1 metric api

import (
	"context"
	"time"
	"unicode"

	"github.com/pkg/errors"
	"github.com/slack-go/slack"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var slackAPIMethods = []string{"PostMessageContext", "UpdateMessageContext", "DeleteMessageContext", "UploadFileContext", "GetFilesContext"}

// SlackAPIWithTelemetry implements SlackAPI interface with all methods wrapped
// with open telemetry metrics
type SlackAPIWithTelemetry struct {
	base               SlackAPI
	attrs              metric.MeasurementOption
	methodCounters     map[string]metric.Int64Counter
	errCounters        map[string]metric.Int64Counter
	methodTimeMeasures map[string]metric.Int64Histogram
}

// NewSlackAPIWithTelemetry returns an instance of the SlackAPI decorated with open telemetry timing and count metrics
func NewSlackAPIWithTelemetry(base SlackAPI, name string, meter metric.Meter) (d SlackAPIWithTelemetry, err error) {
	d = SlackAPIWithTelemetry{base: base, attrs: metric.WithAttributes(attribute.String("name", name))}

	if d.methodCounters, err = newSlackAPIMethodCounters("Calls", meter); err != nil {
		return d, err
	}

	if d.errCounters, err = newSlackAPIMethodCounters("Errors", meter); err != nil {
		return d, err
	}

	if d.methodTimeMeasures, err = newSlackAPIMethodTimeMeasures(meter); err != nil {
		return d, err
	}

	return d, nil
}

func newSlackAPIMethodTimeMeasures(meter metric.Meter) (timeMeasures map[string]metric.Int64Histogram, err error) {
	timeMeasures = make(map[string]metric.Int64Histogram)

	for _, m := range slackAPIMethods {
		if timeMeasures[m], err = meter.Int64Histogram(instrumentName(m, "ProcessingTimeMillis"), metric.WithUnit("ms")); err != nil {
			return nil, errors.Wrapf(err, "failed to create time measure for [%s]", m)
		}
	}

	return timeMeasures, nil
}

func newSlackAPIMethodCounters(suffix string, meter metric.Meter) (counters map[string]metric.Int64Counter, err error) {
	counters = make(map[string]metric.Int64Counter)

	for _, m := range slackAPIMethods {
		if counters[m], err = meter.Int64Counter(instrumentName(m, suffix)); err != nil {
			return nil, errors.Wrapf(err, "failed to create %s counter for [%s]", suffix, m)
		}
	}

	return counters, nil
}

// instrumentName returns the name of a method instrument, i.e. slackAPI_PostMessageContext_Calls
func instrumentName(method string, suffix string) string {
	n := []rune("SlackAPI_" + method + "_" + suffix)
	n[0] = unicode.ToLower(n[0])

	return string(n)
}

// record adds to the method counters and records the processing time since the given time
func (_d SlackAPIWithTelemetry) record(ctx context.Context, method string, since time.Time, err error) {
	if err != nil {
		_d.errCounters[method].Add(ctx, 1, _d.attrs)
	}

	_d.methodCounters[method].Add(ctx, 1, _d.attrs)
	_d.methodTimeMeasures[method].Record(ctx, time.Since(since).Milliseconds(), _d.attrs)
}

// PostMessageContext implements SlackAPI
func (_d SlackAPIWithTelemetry) PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (rChannelID string, rTimestamp string, err error) {
	_since := time.Now()
	defer func() {
		_d.record(ctx, "PostMessageContext", _since, err)
	}()
	return _d.base.PostMessageContext(ctx, channelID, options...)
}

// UpdateMessageContext implements SlackAPI
func (_d SlackAPIWithTelemetry) UpdateMessageContext(ctx context.Context, channelID string, timestamp string, options ...slack.MsgOption) (rChannelID string, rTimestamp string, rText string, err error) {
	_since := time.Now()
	defer func() {
		_d.record(ctx, "UpdateMessageContext", _since, err)
	}()
	return _d.base.UpdateMessageContext(ctx, channelID, timestamp, options...)
}

// DeleteMessageContext implements SlackAPI
func (_d SlackAPIWithTelemetry) DeleteMessageContext(ctx context.Context, channelID string, timestamp string) (rChannelID string, rTimestamp string, err error) {
	_since := time.Now()
	defer func() {
		_d.record(ctx, "DeleteMessageContext", _since, err)
	}()
	return _d.base.DeleteMessageContext(ctx, channelID, timestamp)
}

// UploadFileContext implements SlackAPI
func (_d SlackAPIWithTelemetry) UploadFileContext(ctx context.Context, params slack.FileUploadParameters) (file *slack.File, err error) {
	_since := time.Now()
	defer func() {
		_d.record(ctx, "UploadFileContext", _since, err)
	}()
	return _d.base.UploadFileContext(ctx, params)
}

// GetFilesContext implements SlackAPI
func (_d SlackAPIWithTelemetry) GetFilesContext(ctx context.Context, params slack.GetFilesParameters) (files []slack.File, paging *slack.Paging, err error) {
	_since := time.Now()
	defer func() {
		_d.record(ctx, "GetFilesContext", _since, err)
	}()
	return _d.base.GetFilesContext(ctx, params)
}
