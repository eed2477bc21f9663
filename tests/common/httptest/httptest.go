//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type request struct {
	body    []byte
	json    bool
	token   string
	headers map[string]string
	cookies []*http.Cookie
}

func (r request) serve(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	var body io.Reader = http.NoBody
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}
	req := httptest.NewRequest(method, path, body)
	if r.json {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}
	for _, c := range r.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonRequest(t *testing.T, body any, token string) request {
	t.Helper()
	r := request{token: token}
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err, "encode request body")
		r.body, r.json = b, true
	}
	return r
}

// PerformRequest sends body as JSON, authenticated with a bearer token when one is given.
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, authToken string) *httptest.ResponseRecorder {
	t.Helper()
	return jsonRequest(t, body, authToken).serve(router, method, path)
}

func PerformRequestWithCookies(t *testing.T, router *gin.Engine, method, path string, body any, cookies []*http.Cookie, authToken string) *httptest.ResponseRecorder {
	t.Helper()
	r := jsonRequest(t, body, authToken)
	r.cookies = cookies
	return r.serve(router, method, path)
}

// PerformRawRequest sends raw bytes untouched, for callers that sign the exact payload.
func PerformRawRequest(t *testing.T, router *gin.Engine, method, path string, raw []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	h := map[string]string{"Content-Type": "application/json"}
	for k, v := range headers {
		h[k] = v
	}
	return request{body: raw, headers: h}.serve(router, method, path)
}

func DecodeResponseBody(t *testing.T, body *bytes.Buffer, target any) error {
	t.Helper()
	err := json.NewDecoder(body).Decode(target)
	require.NoError(t, err, "decode response body")
	return err
}
