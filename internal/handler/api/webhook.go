package api

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	reqdto "cellar-shop/internal/handler/dto/request"
	"cellar-shop/internal/handler/httperr"
	"cellar-shop/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	SignatureHeader = "X-Carrier-Signature"

	// MaxWebhookBody bounds what is read before the signature is checked.
	MaxWebhookBody = 1 << 20
)

var errBadSignature = errors.New("invalid webhook signature")

type CarrierWebhookHandler struct {
	cmds   commands.OrderCommands
	secret []byte
}

func NewCarrierWebhookHandler(cmds commands.OrderCommands, secret string) *CarrierWebhookHandler {
	return &CarrierWebhookHandler{cmds: cmds, secret: []byte(secret)}
}

// Sign returns the hex HMAC-SHA256 of body.
func Sign(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// @Summary Carrier tracking webhook
// @Tags carrier
// @Accept json
// @Produce json
// @Param X-Carrier-Signature header string true "hex HMAC-SHA256 of the body"
// @Param request body reqdto.CarrierWebhookRequest true "Tracking update"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 413 {object} httperr.Response
// @Router /carrier/webhook [post]
func (h *CarrierWebhookHandler) Receive(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxWebhookBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, "Request body too large", nil)
			return
		}
		httperr.Abort(c, bindError(err))
		return
	}
	if len(h.secret) == 0 || !h.validSignature(c.GetHeader(SignatureHeader), body) {
		httperr.AbortWithError(c, http.StatusUnauthorized, errBadSignature, "Invalid signature", nil)
		return
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	var req reqdto.CarrierWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, bindError(err))
		return
	}

	var occurredAt time.Time
	if req.Timestamp != "" {
		if occurredAt, err = time.Parse(time.RFC3339, req.Timestamp); err != nil {
			slog.Warn("Ignoring unparseable carrier timestamp", "timestamp", req.Timestamp)
		}
	}

	applied, err := h.cmds.IngestCarrierStatus(c.Request.Context(), commands.CarrierStatusUpdate{
		TrackingNumber: req.TrackingNumber,
		Code:           req.StatusCode,
		Description:    req.Description,
		OccurredAt:     occurredAt,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applied": applied})
}

func (h *CarrierWebhookHandler) validSignature(got string, body []byte) bool {
	want := Sign(h.secret, body)
	return hmac.Equal([]byte(got), []byte(want))
}
