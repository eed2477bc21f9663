package ups

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"cellar-shop/internal/pkg/errs"
)

// transportError covers timeouts, resets and DNS failures. Only a caller
// cancellation is final.
func transportError(op string, err error) error {
	return &errs.CollaboratorError{
		Collaborator: collaborator,
		Op:           op,
		Retryable:    !errors.Is(err, context.Canceled),
		Err:          err,
	}
}

// statusError reads the carrier error body. 5xx and 429 are retryable.
func statusError(op string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	msg := http.StatusText(resp.StatusCode)
	var body errorResponse
	if json.Unmarshal(raw, &body) == nil && len(body.Response.Errors) > 0 {
		parts := make([]string, 0, len(body.Response.Errors))
		for _, e := range body.Response.Errors {
			parts = append(parts, e.Code+" "+e.Message)
		}
		msg = strings.Join(parts, "; ")
	}
	return &errs.CollaboratorError{
		Collaborator: collaborator,
		Op:           op,
		StatusCode:   resp.StatusCode,
		Retryable:    resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests,
		Err:          errs.New(msg),
	}
}

func logCacheError(ctx context.Context, op string, err error) {
	slog.WarnContext(ctx, "carrier token cache unavailable",
		slog.String("op", op),
		slog.String("error", err.Error()))
}

func newTransactionID() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
