package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mobilekit/fblogin/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("text format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithTextFormatter(), logger.WithOutput(&buf))
		log.Info("hello", logger.Component("test"))

		assert.Contains(t, buf.String(), "msg=hello")
		assert.Contains(t, buf.String(), "component=test")
	})

	t.Run("json format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithJSONFormatter(), logger.WithOutput(&buf))
		log.Info("hello", logger.AppID("1234"))

		assert.Contains(t, buf.String(), `"app_id":"1234"`)
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		log.Warn("kept")

		assert.NotContains(t, buf.String(), "dropped")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("static attributes on every record", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithAttr(slog.String("sdk", "fblogin")))
		log.Info("first")

		assert.Contains(t, buf.String(), "sdk=fblogin")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			logger.New(logger.WithFormat("xml"))
		})
	})
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Error(nil))
	assert.Equal(t, "error", logger.Error(errors.New("boom")).Key)
	assert.Equal(t, "user_id", logger.UserID("42").Key)
	assert.Equal(t, "scheme", logger.Scheme("fb1234").Key)
	assert.Equal(t, "state", logger.State("idle").Key)
	assert.Equal(t, "url", logger.URL("fb1234://authorize").Key)
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	log := logger.Discard()
	assert.NotNil(t, log)
	log.Info("goes nowhere")
}
