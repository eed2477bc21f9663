package ups

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cellar-shop/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const (
	tokenPath      = "/security/v1/oauth/token"
	tokenCacheKey  = "carrier:ups:oauth_token"
	tokenEarlyExit = 60 * time.Second
	tokenFetchTime = 15 * time.Second
)

// TokenSource hands out OAuth client-credential tokens shared across
// instances through Redis. Concurrent misses collapse into one fetch.
type TokenSource struct {
	baseURL      string
	clientID     string
	clientSecret string
	http         *http.Client
	cache        redis.Cmdable
	group        singleflight.Group
}

func NewTokenSource(baseURL, clientID, clientSecret string, httpClient *http.Client, cache redis.Cmdable) *TokenSource {
	return &TokenSource{
		baseURL:      strings.TrimRight(baseURL, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
		http:         httpClient,
		cache:        cache,
	}
}

type tokenResponse struct {
	AccessToken string      `json:"access_token"`
	ExpiresIn   json.Number `json:"expires_in"`
}

func (s *TokenSource) Token(ctx context.Context) (string, error) {
	cached, err := s.cache.Get(ctx, tokenCacheKey).Result()
	if err == nil && cached != "" {
		return cached, nil
	}
	if err != nil && err != redis.Nil {
		// cache outage degrades to fetching per call
		logCacheError(ctx, "get", err)
	}

	// the shared fetch outlives any single caller; each caller still stops
	// waiting when its own context ends
	ch := s.group.DoChan(tokenCacheKey, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), tokenFetchTime)
		defer cancel()
		return s.fetch(fetchCtx)
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Invalidate drops the cached token after the carrier rejected it.
func (s *TokenSource) Invalidate(ctx context.Context) {
	if err := s.cache.Del(ctx, tokenCacheKey).Err(); err != nil {
		logCacheError(ctx, "del", err)
	}
}

func (s *TokenSource) fetch(ctx context.Context) (string, error) {
	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errs.Wrap(err, "failed to build token request")
	}
	req.SetBasicAuth(s.clientID, s.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return "", transportError(opToken, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", statusError(opToken, resp)
	}

	var body tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", &errs.CollaboratorError{Collaborator: collaborator, Op: opToken, StatusCode: resp.StatusCode, Err: err}
	}
	if body.AccessToken == "" {
		return "", &errs.CollaboratorError{Collaborator: collaborator, Op: opToken, StatusCode: resp.StatusCode, Err: errs.New("empty access token")}
	}

	ttl := time.Hour
	if secs, err := body.ExpiresIn.Int64(); err == nil && secs > 0 {
		ttl = time.Duration(secs) * time.Second
	}
	if ttl > 2*tokenEarlyExit {
		ttl -= tokenEarlyExit
	}
	if err := s.cache.Set(ctx, tokenCacheKey, body.AccessToken, ttl).Err(); err != nil {
		logCacheError(ctx, "set", err)
	}
	return body.AccessToken, nil
}
