package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSONWithLoglevelKey(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf)

	logger.WithField("accountID", 7).Info("hello")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["loglevel"])
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, float64(7), line["accountID"])
}

func TestLogData_CollectsDataAndTimings(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logData := NewLogData(logger)

	logData.AddData("accountID", int64(3))
	stop := logData.AddTiming("getAccountMs")
	stop()
	logData.Log().Info("done")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, int64(3), entry.Data["accountID"])
	assert.Contains(t, entry.Data, "getAccountMs")
}

func TestGetLogData(t *testing.T) {
	logger, _ := test.NewNullLogger()
	logData := NewLogData(logger)

	assert.Nil(t, GetLogData(context.Background()))
	assert.Same(t, logData, GetLogData(WithLogData(context.Background(), logData)))
}

func TestLoggingWrapper(t *testing.T) {
	logger, hook := test.NewNullLogger()

	ok := LoggingWrapper("Ok", logger, func(w http.ResponseWriter, r *http.Request, logData *LogData) error {
		assert.Same(t, logData, GetLogData(r.Context()))
		w.WriteHeader(http.StatusOK)
		return nil
	})
	ok(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "Handler.Ok.Complete", hook.LastEntry().Message)

	failing := LoggingWrapper("Fail", logger, func(w http.ResponseWriter, r *http.Request, logData *LogData) error {
		return errors.New("nope")
	})
	failing(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "Handler.Fail.Error", hook.LastEntry().Message)
}
