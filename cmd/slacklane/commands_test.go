package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/alexandre-normand/slacklane"
	"github.com/alexandre-normand/slacklane/test/assertresult"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

type call struct {
	path   string
	values map[string]string
}

func newSlackServer(t *testing.T, response string) (server *httptest.Server, calls *[]call) {
	calls = new([]call)
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())

		values := make(map[string]string)
		for k := range r.PostForm {
			values[k] = r.PostForm.Get(k)
		}
		*calls = append(*calls, call{path: r.URL.Path, values: values})

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, response)
	}))

	return server, calls
}

func execute(args ...string) (out string, errOut string, err error) {
	var stdout, stderr bytes.Buffer

	root := newRootCmd(&stdout, &stderr)
	root.SetArgs(args)
	err = root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestPostCommand(t *testing.T) {
	server, calls := newSlackServer(t, `{"ok":true,"channel":"C1234567890","ts":"1500000000.000100"}`)
	defer server.Close()

	out, errOut, err := execute("post", "--api-url", server.URL+"/", "--api-token", "xoxb-test",
		"--channel", "releases", "--message", "Shipped", "--default-payloads=")
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	assert.Equal(t, "/chat.postMessage", (*calls)[0].path)
	assert.Equal(t, "#releases", (*calls)[0].values["channel"])
	assert.Equal(t, "fastlane", (*calls)[0].values["username"])
	assert.Contains(t, (*calls)[0].values["attachments"], "Shipped")

	var result slacklane.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assertresult.HasStatus(t, &result, http.StatusOK)
	assertresult.IsOK(t, &result)
	assertresult.HasJSONValue(t, &result, "ts", "1500000000.000100")

	assert.Equal(t, "Successfully sent Slack notification\n", errOut)
}

func TestDeleteCommandWithSlackError(t *testing.T) {
	server, calls := newSlackServer(t, `{"ok":false,"error":"message_not_found"}`)
	defer server.Close()

	out, errOut, err := execute("delete", "--api-url", server.URL+"/", "--api-token", "xoxb-test",
		"--channel", "C1234567890", "--ts", "1500000000.000100")
	require.Error(t, err)

	require.Len(t, *calls, 1)
	assert.Equal(t, "/chat.delete", (*calls)[0].path)
	assert.Equal(t, "1500000000.000100", (*calls)[0].values["ts"])

	var result slacklane.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assertresult.HasSlackError(t, &result, "message_not_found")

	assert.Contains(t, errOut, "Error: delete message failed")
	assert.Equal(t, 1, bytes.Count([]byte(errOut), []byte("Error:")))
}

func TestFilesCommand(t *testing.T) {
	server, calls := newSlackServer(t, `{"ok":true,"files":[{"id":"F1","name":"build.log"}],"paging":{"count":10,"total":1,"page":2,"pages":1}}`)
	defer server.Close()

	out, _, err := execute("files", "--api-url", server.URL+"/", "--api-token", "xoxb-test",
		"--channel", "C1234567890", "--count", "10", "--page", "2")
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	assert.Equal(t, "/files.list", (*calls)[0].path)
	assert.Equal(t, "C1234567890", (*calls)[0].values["channel"])
	assert.Equal(t, "10", (*calls)[0].values["count"])
	assert.Equal(t, "2", (*calls)[0].values["page"])
	assert.Contains(t, out, `"build.log"`)
}

func TestMissingRequiredOption(t *testing.T) {
	server, calls := newSlackServer(t, `{"ok":true}`)
	defer server.Close()

	out, errOut, err := execute("update", "--api-url", server.URL+"/", "--api-token", "xoxb-test", "--channel", "C1234567890")
	require.Error(t, err)

	assert.Empty(t, *calls)
	assert.Empty(t, out)
	assert.Equal(t, "Error: missing required option [ts], set it with --ts or one of [FL_UPDATE_SLACK_MESSAGE_TS]\n", errOut)
}

func TestInvalidCount(t *testing.T) {
	server, calls := newSlackServer(t, `{"ok":true}`)
	defer server.Close()

	_, errOut, err := execute("files", "--api-url", server.URL+"/", "--api-token", "xoxb-test",
		"--channel", "C1234567890", "--count", "many")
	require.Error(t, err)

	assert.Empty(t, *calls)
	assert.Contains(t, errOut, "Error: invalid [count] value [many]")
}

func TestUnknownArgument(t *testing.T) {
	_, _, err := execute("delete", "extra")
	assert.Error(t, err)
}
