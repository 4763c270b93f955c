package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLevels(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, false)
	slog.Debug("hidden")
	slog.Info("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")

	buf.Reset()
	Setup(&buf, true)
	slog.Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
}

func TestErrNilIsOmitted(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("ok", Err(nil))
	assert.NotContains(t, buf.String(), "error=")
}

func TestUserAttrAnonymizes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("exported", User("alice@example.com"))
	out := buf.String()
	assert.NotContains(t, out, "alice")
	assert.Contains(t, out, "user=user:")

	buf.Reset()
	logger.Info("exported", User(""))
	assert.NotContains(t, buf.String(), "user=")
}

func TestAnonymizeEmail(t *testing.T) {
	hashed := AnonymizeEmail("alice@example.com")
	assert.True(t, strings.HasPrefix(hashed, "user:"))
	assert.NotContains(t, hashed, "alice")
	assert.Equal(t, hashed, AnonymizeEmail("alice@example.com"))
	assert.Empty(t, AnonymizeEmail(""))
}
