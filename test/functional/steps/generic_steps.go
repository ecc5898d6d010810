package steps

import (
	"strings"
)

func (fc *FeatureContext) theResponseStatusCodeShouldBe(code int) error {
	fc.require.Equal(code, fc.response.StatusCode, "Unexpected status code, body: %s", fc.responseBody)
	return nil
}

func (fc *FeatureContext) theErrorMessageShouldBe(message string) error {
	fc.require.Equal(message, fc.errorMessage())
	return nil
}

func (fc *FeatureContext) theErrorMessageShouldStartWith(prefix string) error {
	message := fc.errorMessage()
	fc.require.True(strings.HasPrefix(message, prefix), "message %q should start with %q", message, prefix)
	return nil
}

func (fc *FeatureContext) errorMessage() string {
	var data map[string]any
	fc.decodeBody(&data)
	message, ok := data["message"].(string)
	fc.require.True(ok, "message should be a string")
	return message
}
