package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogData() *LogData {
	logger := SetupLoggingWithLevel("debug")
	logger.Out = &bytes.Buffer{}
	return NewLogData(logger)
}

func TestLogData_FieldsAndTimings(t *testing.T) {
	logData := newTestLogData()

	logData.AddData("userID", "u-1")
	stop := logData.AddTiming("queryMs")
	stop()

	entry := logData.Log()
	assert.Equal(t, "u-1", entry.Data["userID"])
	assert.Contains(t, entry.Data, "queryMs")
}

func TestTimed_NilLogData(t *testing.T) {
	got, err := Timed(nil, "x", func() (int, error) { return 7, nil })

	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestTimed_RecordsErrorPath(t *testing.T) {
	logData := newTestLogData()

	_, err := Timed(logData, "failingMs", func() (string, error) { return "", errors.New("boom") })

	assert.EqualError(t, err, "boom")
	assert.Contains(t, logData.Log().Data, "failingMs")
}

func TestLogDataContext(t *testing.T) {
	logData := newTestLogData()

	assert.Nil(t, GetLogData(context.Background()))
	assert.Same(t, logData, GetLogData(WithLogData(context.Background(), logData)))
}

func TestSetupLoggingWithLevel_FallsBackToInfo(t *testing.T) {
	logger := SetupLoggingWithLevel("chatty")

	assert.Equal(t, "info", logger.Level.String())
}

func TestLoggingWrapper_RecoversPanic(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupLoggingWithLevel("info")
	logger.Out = &buf

	handler := LoggingWrapper("Boom", logger, func(http.ResponseWriter, *http.Request, *LogData) error {
		panic("nil map")
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/status", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, buf.String(), "Handler.Boom.Error")
	assert.Contains(t, buf.String(), "panic: nil map")
}

func TestHumaMiddleware_OneLinePerRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupLoggingWithLevel("info")
	logger.Out = &buf

	_, api := humatest.New(t)
	api.UseMiddleware(HumaMiddleware(logger))
	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
	}, func(ctx context.Context, _ *struct{}) (*struct{}, error) {
		GetLogData(ctx).AddData("seen", true)
		return nil, nil
	})

	resp := api.Get("/ping")
	require.Equal(t, http.StatusNoContent, resp.Code)

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "Handler.ping.Complete", line["msg"])
	assert.Equal(t, true, line["seen"])
	assert.Equal(t, float64(http.StatusNoContent), line["status"])
	assert.Equal(t, "info", line["loglevel"])
}
