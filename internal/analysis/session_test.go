package analysis

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imagezebra/imagezebra-go/internal/client"
)

// fakeBackend fakes the API and the storage endpoint for end-to-end session
// tests. The summary endpoint stays pending for pendingPolls calls before
// turning complete.
type fakeBackend struct {
	api     *httptest.Server
	storage *httptest.Server

	pendingPolls int32

	uploads       atomic.Int32
	summaryCalls  atomic.Int32
	otherAPICalls atomic.Int32

	mu                sync.Mutex
	presignedFilename string
	analysisUploadID  string
	analysisTargetID  string
	summaryUploadID   string
}

func (b *fakeBackend) recorded() (presignedFilename, analysisUploadID, analysisTargetID, summaryUploadID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.presignedFilename, b.analysisUploadID, b.analysisTargetID, b.summaryUploadID
}

func newFakeBackend(t *testing.T, pendingPolls int32) *fakeBackend {
	t.Helper()
	b := &fakeBackend{pendingPolls: pendingPolls}

	b.storage = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.uploads.Add(1)
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(b.storage.Close)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]string{"token": "test-token"})
	})
	mux.HandleFunc("GET /presigned-urls/{filename}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.presignedFilename = r.PathValue("filename")
		b.mu.Unlock()
		writeJSON(t, w, http.StatusOK, map[string]any{
			"url":      b.storage.URL,
			"fields":   []map[string]string{{"key": "policy", "value": "abc"}},
			"uploadId": "u-777",
		})
	})
	mux.HandleFunc("POST /requests-for-analysis/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.analysisUploadID = r.PathValue("id")
		b.analysisTargetID = r.URL.Query().Get("target_id")
		b.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("GET /upload-results-summary/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.summaryUploadID = r.PathValue("id")
		b.mu.Unlock()
		if b.summaryCalls.Add(1) <= b.pendingPolls {
			writeJSON(t, w, http.StatusNotFound, map[string]string{"error": "Image analysis not complete"})
			return
		}
		writeJSON(t, w, http.StatusOK, map[string]any{
			"filePath": "uploads/" + r.PathValue("id") + ".jpg",
			"status":   "complete",
			"passing":  true,
		})
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		b.otherAPICalls.Add(1)
		w.WriteHeader(http.StatusTeapot)
	})

	b.api = httptest.NewServer(mux)
	t.Cleanup(b.api.Close)
	return b
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func writeSampleImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "img.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpeg-bytes"), 0o600))
	return path
}

func newSessionAgainst(t *testing.T, b *fakeBackend) *Session {
	t.Helper()
	api, err := client.New(context.Background(), b.api.URL, client.Credentials{
		ApplicationKey: "app-key",
		Username:       "alice",
		Password:       "secret",
	})
	require.NoError(t, err)

	return NewSession(api, WithPolling(time.Millisecond, 10))
}

func TestSession_Run_CompletesAfterThreePolls(t *testing.T) {
	b := newFakeBackend(t, 2)
	sess := newSessionAgainst(t, b)

	summary, err := sess.Run(context.Background(), writeSampleImage(t))
	require.NoError(t, err)

	assert.True(t, summary.Passing)
	assert.Equal(t, int32(3), b.summaryCalls.Load(), "pending, pending, complete")
	assert.Equal(t, int32(1), b.uploads.Load())

	presignedFilename, analysisUploadID, _, summaryUploadID := b.recorded()

	// The uploadId issued with the presigned URL is the sole correlation key
	// and must reach the other endpoints unchanged.
	assert.Equal(t, "u-777", analysisUploadID)
	assert.Equal(t, "u-777", summaryUploadID)

	// Remote filenames carry a unique prefix in front of the local base name.
	assert.True(t, strings.HasSuffix(presignedFilename, "-img.jpg"), "got %q", presignedFilename)
	assert.Greater(t, len(presignedFilename), len("-img.jpg"))

	assert.Zero(t, b.otherAPICalls.Load())
}

func TestSession_RunWithTarget_ThreadsTargetID(t *testing.T) {
	b := newFakeBackend(t, 0)
	sess := newSessionAgainst(t, b)

	_, err := sess.RunWithTarget(context.Background(), writeSampleImage(t), "t-9")
	require.NoError(t, err)

	_, _, analysisTargetID, _ := b.recorded()
	assert.Equal(t, "t-9", analysisTargetID)
}

func TestSession_MissingImageAbortsBeforeAnyCall(t *testing.T) {
	b := newFakeBackend(t, 0)
	sess := newSessionAgainst(t, b)

	_, err := sess.Run(context.Background(), filepath.Join(t.TempDir(), "missing.jpg"))
	require.Error(t, err)

	presignedFilename, _, _, _ := b.recorded()
	assert.Empty(t, presignedFilename)
	assert.Zero(t, b.uploads.Load())
	assert.Zero(t, b.summaryCalls.Load())
}

func TestSession_AuthFailureMakesNoFurtherCalls(t *testing.T) {
	var otherCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		otherCalls.Add(1)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	_, err := client.New(context.Background(), srv.URL, client.Credentials{Username: "alice", Password: "wrong"})
	require.ErrorIs(t, err, client.ErrAuthentication)
	assert.Zero(t, otherCalls.Load())
}
