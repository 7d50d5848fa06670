// Package source adapts an HTTP metadata API to contract.MetadataSource.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"presence-lab/domain"
	"presence-lab/domain/avatar"

	"github.com/samber/lo"
)

// HTTPSource fetches profiles from {base}/v1/users/{id} and avatar
// variants from {base}/v1/thumbnails. It implements both MetadataSource
// and BatchMetadataSource: the batch endpoint resolves a full variant
// grid in one round trip.
type HTTPSource struct {
	log    *slog.Logger
	base   string
	client *http.Client
}

func NewHTTPSource(log *slog.Logger, base string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		log:    log,
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{Timeout: timeout},
	}
}

type userResponse struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	DisplayName      string `json:"displayName"`
	Description      string `json:"description"`
	HasVerifiedBadge bool   `json:"hasVerifiedBadge"`
}

type thumbnailResponse struct {
	Kind  avatar.Kind `json:"kind"`
	Size  avatar.Size `json:"size"`
	State string      `json:"state"`
	URL   string      `json:"imageUrl"`
}

type batchRequest struct {
	UserID   int64            `json:"userId"`
	Requests []avatar.Request `json:"requests"`
}

type batchResponse struct {
	Data []thumbnailResponse `json:"data"`
}

const stateCompleted = "Completed"

func (s *HTTPSource) FetchProfile(ctx context.Context, id int64) (domain.Profile, error) {
	var user userResponse
	endpoint := fmt.Sprintf("%s/v1/users/%d", s.base, id)
	if err := s.getJSON(ctx, endpoint, &user); err != nil {
		return domain.Profile{}, fmt.Errorf("profile %d: %w", id, err)
	}

	return domain.Profile{
		ID:          domain.PlayerID(user.ID),
		DisplayName: user.DisplayName,
		Username:    user.Name,
		Verified:    user.HasVerifiedBadge,
		Description: user.Description,
	}, nil
}

func (s *HTTPSource) FetchAvatar(ctx context.Context, id int64, req avatar.Request) (avatar.Image, error) {
	query := url.Values{
		"userId": {strconv.FormatInt(id, 10)},
		"kind":   {string(req.Kind)},
		"size":   {strconv.Itoa(int(req.Size))},
	}

	var thumb thumbnailResponse
	endpoint := s.base + "/v1/thumbnails?" + query.Encode()
	if err := s.getJSON(ctx, endpoint, &thumb); err != nil {
		return avatar.Image{}, fmt.Errorf("avatar %d %s/%d: %w", id, req.Kind, req.Size, err)
	}
	if thumb.State != stateCompleted {
		return avatar.Image{}, fmt.Errorf("avatar %d %s/%d: state %s", id, req.Kind, req.Size, thumb.State)
	}
	return avatar.Image{URL: thumb.URL}, nil
}

// FetchAvatarBatch posts the whole grid in one request. Cells the server
// reports as anything but Completed come back marked Failed.
func (s *HTTPSource) FetchAvatarBatch(ctx context.Context, id int64, reqs []avatar.Request) (avatar.Set, error) {
	payload, err := json.Marshal(batchRequest{UserID: id, Requests: reqs})
	if err != nil {
		return nil, fmt.Errorf("avatar batch %d: %w", id, err)
	}

	endpoint := s.base + "/v1/thumbnails/batch"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(string(payload)))
	if err != nil {
		return nil, fmt.Errorf("avatar batch %d: %w", id, err)
	}
	req.Header.Set("Content-Type", "application/json")

	var batch batchResponse
	if err := s.doJSON(req, &batch); err != nil {
		return nil, fmt.Errorf("avatar batch %d: %w", id, err)
	}

	byCell := lo.SliceToMap(batch.Data, func(t thumbnailResponse) (avatar.Request, thumbnailResponse) {
		return avatar.Request{Kind: t.Kind, Size: t.Size}, t
	})

	set := avatar.NewSet()
	for _, r := range reqs {
		thumb, ok := byCell[r]
		if !ok || thumb.State != stateCompleted {
			set.Put(r, avatar.Image{Failed: true})
			continue
		}
		set.Put(r, avatar.Image{URL: thumb.URL})
	}
	return set, nil
}

func (s *HTTPSource) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	return s.doJSON(req, out)
}

func (s *HTTPSource) doJSON(req *http.Request, out any) error {
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
