package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomFormatter(t *testing.T) {
	entry := &logrus.Entry{
		Time:    time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "hello",
		Data:    logrus.Fields{"b": 2, "a": "x"},
	}

	out, err := (&CustomFormatter{}).Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "[2025-01-02 03:04:05] [WARN] [] hello a=x b=2\n", string(out))
}

func TestCustomFormatter_CallerField(t *testing.T) {
	entry := &logrus.Entry{
		Level:   logrus.ErrorLevel,
		Message: "boom",
		Data:    logrus.Fields{callerKey: "news.go:42"},
	}

	out, err := (&CustomFormatter{}).Format(entry)
	require.NoError(t, err)
	assert.Contains(t, string(out), "[ERRO] [news.go:42] boom\n")
}

func TestInitLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	require.NoError(t, InitLogger("debug", path))
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())

	Log.Info("written")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written")
}

func TestNew_UnknownLevel(t *testing.T) {
	l, err := New("loud", "")
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
}

func TestKratosLogger(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetFormatter(&CustomFormatter{})
	l.SetOutput(&buf)
	l.SetLevel(logrus.DebugLevel)

	h := log.NewHelper(log.With(NewKratosLogger(l), "module", "biz"))
	h.Warnf("fetched %d", 3)

	assert.Contains(t, buf.String(), "[WARN]")
	assert.Contains(t, buf.String(), "fetched 3 module=biz")

	buf.Reset()
	require.NoError(t, NewKratosLogger(l).Log(log.LevelInfo, "odd"))
	assert.Contains(t, buf.String(), "odd=KEYVALS UNPAIRED")
}
