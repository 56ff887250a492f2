package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogger_FallsBackToGlobal(t *testing.T) {
	entry := G(context.Background())
	require.NotNil(t, entry)
	assert.Equal(t, L.Logger, entry.Logger)
}

func TestWithLogger_RoundTrip(t *testing.T) {
	ctx := context.Background()
	tagged := L.WithField("component", "test")

	ctx = WithLogger(ctx, tagged)
	got := G(ctx)
	assert.Equal(t, "test", got.Data["component"])
}

func TestSetLogLevel(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, SetLogLevel("info")) })

	require.NoError(t, SetLogLevel("debug"))
	assert.Equal(t, logrus.DebugLevel, L.Logger.GetLevel())

	assert.Error(t, SetLogLevel("not-a-level"))
}

func TestSetLogFormat(t *testing.T) {
	t.Cleanup(func() {
		SetLogFormat("text")
		SetLogOutput(logrus.New().Out)
	})

	var buf bytes.Buffer
	SetLogOutput(&buf)
	SetLogFormat("json")
	L.Info("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}
