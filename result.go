package slacklane

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"

	"github.com/pkg/errors"
)

// Result holds the outcome of a slack api call: the http status, the raw response body and the
// body parsed as JSON (an empty map if the body isn't a JSON object). When the call didn't go
// through http (i.e. with a test SlackAPI), Status is 0 and JSON is built from the values the
// SlackAPI returned
type Result struct {
	Status int                    `json:"status"`
	Body   string                 `json:"body"`
	JSON   map[string]interface{} `json:"json"`
}

// Doer is implemented by http clients. *http.Client implements it
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// exchangeKey is the context key of the exchange recorded for a call
type exchangeKey struct{}

// exchange holds the last http response observed during a call
type exchange struct {
	observed bool
	status   int
	body     []byte
}

// withExchange returns a context recording the http response of the call made with it
func withExchange(ctx context.Context) (rctx context.Context, ex *exchange) {
	ex = new(exchange)
	return context.WithValue(ctx, exchangeKey{}, ex), ex
}

// result returns the Result of the recorded response or nil if no response was observed
func (ex *exchange) result() (r *Result) {
	if !ex.observed {
		return nil
	}

	return newResult(ex.status, ex.body)
}

// recordingClient wraps a Doer to record responses on the exchange carried by the request
// context. The response body is read fully and handed back to the caller untouched
type recordingClient struct {
	doer Doer
}

// newRecordingClient returns a Doer recording responses of requests made with a
// context from withExchange
func newRecordingClient(doer Doer) (rc *recordingClient) {
	return &recordingClient{doer: doer}
}

// Do sends the request and records the response
func (rc *recordingClient) Do(req *http.Request) (resp *http.Response, err error) {
	resp, err = rc.doer.Do(req)
	if err != nil {
		return resp, err
	}

	ex, ok := req.Context().Value(exchangeKey{}).(*exchange)
	if !ok {
		return resp, nil
	}

	body, err := ioutil.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, errors.Wrapf(err, "error reading response body of [%s]", req.URL)
	}

	resp.Body = ioutil.NopCloser(bytes.NewReader(body))
	ex.observed = true
	ex.status = resp.StatusCode
	ex.body = body

	return resp, nil
}

// newResult returns a Result with the body parsed as a JSON object
func newResult(status int, body []byte) (r *Result) {
	r = &Result{Status: status, Body: string(body), JSON: make(map[string]interface{})}

	var parsed map[string]interface{}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed != nil {
		r.JSON = parsed
	}

	return r
}

// synthesizedResult returns a Result with a JSON body built from values. Values go through a
// JSON roundtrip so that Result.JSON holds the same types as a parsed response
func synthesizedResult(values map[string]interface{}) (r *Result) {
	body, err := json.Marshal(values)
	if err != nil {
		return &Result{JSON: make(map[string]interface{})}
	}

	return newResult(0, body)
}
