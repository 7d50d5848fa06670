package source

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"presence-lab/domain"
	"presence-lab/domain/avatar"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/users/42", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(userResponse{
			ID:               42,
			Name:             "alice_a",
			DisplayName:      "alice",
			Description:      "likes obbies",
			HasVerifiedBadge: true,
		})
	})

	mux.HandleFunc("GET /v1/thumbnails", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("size") == "180" {
			_ = json.NewEncoder(w).Encode(thumbnailResponse{State: "Pending"})
			return
		}
		_ = json.NewEncoder(w).Encode(thumbnailResponse{
			State: "Completed",
			URL:   "https://cdn.test/single.png",
		})
	})

	mux.HandleFunc("POST /v1/thumbnails/batch", func(w http.ResponseWriter, r *http.Request) {
		var batch batchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&batch))

		var data []thumbnailResponse
		for _, req := range batch.Requests {
			// One cell stays unrendered to exercise the Failed marker
			if req.Kind == avatar.KindBust && req.Size == avatar.Size420 {
				data = append(data, thumbnailResponse{Kind: req.Kind, Size: req.Size, State: "Blocked"})
				continue
			}
			data = append(data, thumbnailResponse{
				Kind:  req.Kind,
				Size:  req.Size,
				State: "Completed",
				URL:   "https://cdn.test/batch.png",
			})
		}
		_ = json.NewEncoder(w).Encode(batchResponse{Data: data})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestHTTPSource_FetchProfile(t *testing.T) {
	req := require.New(t)
	server := newTestServer(t)
	src := NewHTTPSource(logs.GetLoggerFromLevel(slog.LevelDebug), server.URL, time.Second)

	p, err := src.FetchProfile(t.Context(), 42)
	req.NoError(err)
	req.Equal(domain.Profile{
		ID:          42,
		DisplayName: "alice",
		Username:    "alice_a",
		Verified:    true,
		Description: "likes obbies",
	}, p)
}

func TestHTTPSource_FetchProfile_UnknownPlayerIsAnError(t *testing.T) {
	req := require.New(t)
	server := newTestServer(t)
	src := NewHTTPSource(logs.GetLoggerFromLevel(slog.LevelDebug), server.URL, time.Second)

	_, err := src.FetchProfile(t.Context(), 404404)
	req.Error(err)
	req.Contains(err.Error(), "unexpected status")
}

func TestHTTPSource_FetchAvatar(t *testing.T) {
	req := require.New(t)
	server := newTestServer(t)
	src := NewHTTPSource(logs.GetLoggerFromLevel(slog.LevelDebug), server.URL, time.Second)

	img, err := src.FetchAvatar(t.Context(), 42, avatar.Request{Kind: avatar.KindHeadShot, Size: avatar.Size150})
	req.NoError(err)
	req.Equal("https://cdn.test/single.png", img.URL)

	// A cell the server has not rendered is an error, not a silent blank
	_, err = src.FetchAvatar(t.Context(), 42, avatar.Request{Kind: avatar.KindHeadShot, Size: avatar.Size180})
	req.Error(err)
	req.Contains(err.Error(), "state Pending")
}

func TestHTTPSource_FetchAvatarBatch(t *testing.T) {
	req := require.New(t)
	server := newTestServer(t)
	src := NewHTTPSource(logs.GetLoggerFromLevel(slog.LevelDebug), server.URL, time.Second)

	reqs := avatar.AllRequests()
	set, err := src.FetchAvatarBatch(t.Context(), 42, reqs)
	req.NoError(err)

	blocked := avatar.Request{Kind: avatar.KindBust, Size: avatar.Size420}
	for _, r := range reqs {
		img, ok := set.Get(r)
		req.True(ok)
		if r == blocked {
			req.True(img.Failed)
			continue
		}
		req.False(img.Failed)
		req.Equal("https://cdn.test/batch.png", img.URL)
	}
}
