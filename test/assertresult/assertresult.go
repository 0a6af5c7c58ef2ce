// Package assertresult provides testing functions to validate the result of a slack api call
package assertresult

import (
	"github.com/alexandre-normand/slacklane"
	"github.com/stretchr/testify/assert"
)

// IsOK asserts that slack responded with ok set to true
func IsOK(t assert.TestingT, r *slacklane.Result) bool {
	if assert.NotNil(t, r) {
		return assert.Equalf(t, true, r.JSON["ok"], "Result expected to be ok but its json was %v", r.JSON)
	}
	return false
}

// HasSlackError asserts that slack responded with ok set to false and the expected error code
func HasSlackError(t assert.TestingT, r *slacklane.Result, code string) bool {
	if assert.NotNil(t, r) {
		return assert.Equalf(t, false, r.JSON["ok"], "Result expected to not be ok but its json was %v", r.JSON) &&
			assert.Equalf(t, code, r.JSON["error"], "Result error expected to be [%s] but was [%v]", code, r.JSON["error"])
	}
	return false
}

// HasStatus asserts that the http status of the result is the expected status
func HasStatus(t assert.TestingT, r *slacklane.Result, status int) bool {
	if assert.NotNil(t, r) {
		return assert.Equalf(t, status, r.Status, "Result status expected to be [%d] but was [%d]", status, r.Status)
	}
	return false
}

// HasJSONValue asserts that the top level key of the result's json holds the expected value
func HasJSONValue(t assert.TestingT, r *slacklane.Result, key string, value interface{}) bool {
	if assert.NotNil(t, r) {
		return assert.Equalf(t, value, r.JSON[key], "Result json value of [%s] expected to be [%v] but was [%v]", key, value, r.JSON[key])
	}
	return false
}
