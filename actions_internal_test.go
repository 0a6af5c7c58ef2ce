package slacklane

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileNameAndType(t *testing.T) {
	tests := []struct {
		path         string
		expectedName string
		expectedType string
	}{
		{"/path/file_name.jpeg", "file_name", "jpeg"},
		{"build.tar.gz", "build.tar", "gz"},
		{"/path/README", "README", ""},
		{"/path/.env", ".env", ""},
		{"relative/dir/app.ipa", "app", "ipa"},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			name, fileType := fileNameAndType(tc.path)

			assert.Equal(t, tc.expectedName, name)
			assert.Equal(t, tc.expectedType, fileType)
		})
	}
}

func TestSplitChannels(t *testing.T) {
	assert.Equal(t, []string{"C1", "C2", "#general"}, splitChannels([]string{"C1,C2", " #general ,"}))
	assert.Equal(t, []string{}, splitChannels(nil))
}

func TestChannelName(t *testing.T) {
	assert.Equal(t, "", channelName(""))
	assert.Equal(t, "#general", channelName("general"))
	assert.Equal(t, "#general", channelName("#general"))
	assert.Equal(t, "CHXYMXXXX", channelName("CHXYMXXXX"))
	assert.Equal(t, "@daniel", channelName("@daniel"))
	assert.Equal(t, "#channel", channelName("channel"))
}

func TestUnescapeNewLines(t *testing.T) {
	assert.Equal(t, "a\nb\nc", unescapeNewLines(`a\nb\nc`))
	assert.Equal(t, "a\nb", unescapeNewLines("a\nb"))
}

func TestNewResult(t *testing.T) {
	assert.Equal(t, &Result{Status: 200, Body: `{"ok":true}`, JSON: map[string]interface{}{"ok": true}}, newResult(200, []byte(`{"ok":true}`)))
	assert.Equal(t, &Result{Status: 502, Body: "bad gateway", JSON: map[string]interface{}{}}, newResult(502, []byte("bad gateway")))
	assert.Equal(t, &Result{Status: 200, Body: `[1,2]`, JSON: map[string]interface{}{}}, newResult(200, []byte(`[1,2]`)))
	assert.Equal(t, &Result{Status: 200, Body: "", JSON: map[string]interface{}{}}, newResult(200, nil))
}

func TestSynthesizedResult(t *testing.T) {
	r := synthesizedResult(map[string]interface{}{"ok": true, "count": 3})

	assert.Equal(t, 0, r.Status)
	assert.Equal(t, `{"count":3,"ok":true}`, r.Body)
	assert.Equal(t, map[string]interface{}{"ok": true, "count": float64(3)}, r.JSON)
}

func TestInstrumentName(t *testing.T) {
	assert.Equal(t, "slackAPI_PostMessageContext_Calls", instrumentName("PostMessageContext", "Calls"))
}
