package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/truthlens/truthlens/src/classifier"
)

func TestPredictDecodesVerdict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, http.MethodPost, req.Method)
		require.Equal(t, "/api/predict", req.URL.Path)
		require.Equal(t, "application/json", req.Header.Get("Content-Type"))

		var body struct {
			Text string `json:"text"`
		}
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, "some article text for the model", body.Text)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"label":"FAKE","confidence":88.5,"is_fake":true,"model_name":"Ensemble","model_accuracy":96.1}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	resp, err := c.Predict(context.Background(), "some article text for the model")
	require.NoError(t, err)
	assert.Equal(t, classifier.LabelFake, resp.Label)
	assert.Equal(t, 88.5, resp.Confidence)
	assert.True(t, resp.IsFake)
}

func TestPredictSurfacesErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	resp, err := c.Predict(context.Background(), "some article text for the model")
	assert.Nil(t, resp)
	assert.Error(t, err)
}

func TestPredictConnectionFailure(t *testing.T) {
	c := NewClient("http://127.0.0.1:1")
	resp, err := c.Predict(context.Background(), "some article text for the model")
	assert.Nil(t, resp)
	assert.Error(t, err)
}

func TestReady(t *testing.T) {
	ready := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, "/api/status", req.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]bool{"model_ready": ready})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	assert.True(t, c.Ready(context.Background()))

	ready = false
	assert.False(t, c.Ready(context.Background()))
}

func TestReadyFalseWhenUnreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1")
	assert.False(t, c.Ready(context.Background()))
}

func TestMetricsPassthrough(t *testing.T) {
	payload := `{"best_model":"LinearSVC","models":{"LinearSVC":{"accuracy":0.967}}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, "/api/metrics", req.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	raw, err := c.Metrics(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(raw))
}
