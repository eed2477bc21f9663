package ups

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"cellar-shop/internal/pkg/config"
	"cellar-shop/internal/pkg/errs"
	"cellar-shop/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	collaborator = "carrier"

	opToken          = "token"
	opCreateShipment = "create_shipment"
	opTrackShipment  = "track_shipment"

	shipPath  = "/api/shipments/v2409/ship"
	trackPath = "/api/track/v1/details/"

	labelFormat = "GIF"

	maxDescriptionRunes = 50
)

// Recorder receives one call per carrier operation.
type Recorder interface {
	CarrierCall(carrier, op string, err error)
}

type Client struct {
	cfg      config.CarrierConfig
	http     *http.Client
	tokens   *TokenSource
	breaker  *gobreaker.CircuitBreaker[[]byte]
	recorder Recorder
	now      func() time.Time
}

var _ commands.Carrier = (*Client)(nil)

type noopRecorder struct{}

func (noopRecorder) CarrierCall(string, string, error) {}

func NewClient(cfg config.CarrierConfig, cache redis.Cmdable, recorder Recorder) *Client {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	httpClient := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	c := &Client{
		cfg:      cfg,
		http:     httpClient,
		tokens:   NewTokenSource(cfg.BaseURL, cfg.ClientID, cfg.ClientSecret, httpClient, cache),
		recorder: recorder,
		now:      time.Now,
	}
	c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "carrier-" + strings.ToLower(cfg.Name),
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// client errors say nothing about carrier health
		IsSuccessful: func(err error) bool {
			return err == nil || !errs.IsRetryable(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("carrier circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	})
	return c
}

func (c *Client) Name() string {
	return c.cfg.Name
}

func (c *Client) CreateShipment(ctx context.Context, req commands.ShipmentRequest) (*commands.ShipmentResult, error) {
	payload, err := json.Marshal(c.buildShipRequest(req))
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode shipment request")
	}

	raw, err := c.call(ctx, opCreateShipment, http.MethodPost, shipPath, payload)
	c.recorder.CarrierCall(c.cfg.Name, opCreateShipment, err)
	if err != nil {
		return nil, err
	}

	var resp shipResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &errs.CollaboratorError{Collaborator: collaborator, Op: opCreateShipment, Err: err}
	}
	results := resp.ShipmentResponse.ShipmentResults
	if len(results.PackageResults) == 0 || results.PackageResults[0].TrackingNumber == "" {
		return nil, &errs.CollaboratorError{Collaborator: collaborator, Op: opCreateShipment, Err: errs.New("response carried no tracking number")}
	}
	first := results.PackageResults[0]
	format := first.ShippingLabel.ImageFormat.Code
	if format == "" {
		format = labelFormat
	}
	return &commands.ShipmentResult{
		TrackingNumber: first.TrackingNumber,
		ShipmentID:     results.ShipmentIdentificationNumber,
		LabelFormat:    format,
		LabelData:      first.ShippingLabel.GraphicImage,
	}, nil
}

func (c *Client) TrackShipment(ctx context.Context, trackingNumber string) (*commands.TrackingStatus, error) {
	raw, err := c.call(ctx, opTrackShipment, http.MethodGet, trackPath+url.PathEscape(trackingNumber), nil)
	c.recorder.CarrierCall(c.cfg.Name, opTrackShipment, err)
	if err != nil {
		return nil, err
	}

	var resp trackResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &errs.CollaboratorError{Collaborator: collaborator, Op: opTrackShipment, Err: err}
	}
	for _, s := range resp.TrackResponse.Shipment {
		for _, p := range s.Package {
			if len(p.Activity) == 0 {
				continue
			}
			// activities are newest first
			latest := p.Activity[0]
			code := latest.Status.Type
			if code == "" {
				code = latest.Status.Code
			}
			return &commands.TrackingStatus{
				Code:        code,
				Description: latest.Status.Description,
				OccurredAt:  parseActivityTime(latest.Date, latest.Time, c.now()),
			}, nil
		}
	}
	return nil, &errs.CollaboratorError{Collaborator: collaborator, Op: opTrackShipment, StatusCode: http.StatusNotFound, Err: errs.New("no tracking activity")}
}

// call runs one authenticated request through the breaker, retrying once
// with a fresh token on 401.
func (c *Client) call(ctx context.Context, op, method, path string, body []byte) ([]byte, error) {
	raw, err := c.breaker.Execute(func() ([]byte, error) {
		raw, err := c.do(ctx, op, method, path, body)
		var ce *errs.CollaboratorError
		if errors.As(err, &ce) && ce.StatusCode == http.StatusUnauthorized {
			c.tokens.Invalidate(ctx)
			return c.do(ctx, op, method, path, body)
		}
		return raw, err
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, &errs.CollaboratorError{Collaborator: collaborator, Op: op, Retryable: true, Err: err}
	}
	return raw, err
}

func (c *Client) do(ctx context.Context, op, method, path string, body []byte) ([]byte, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(c.cfg.BaseURL, "/")+path, reader)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build carrier request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("transId", newTransactionID())
	req.Header.Set("transactionSrc", "cellar-shop")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, transportError(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(op, resp)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(op, err)
	}
	return raw, nil
}

func (c *Client) buildShipRequest(r commands.ShipmentRequest) shipRequest {
	shipper := c.cfg.Shipper
	recipient := r.Recipient

	var toPhone *phone
	if recipient.Phone != "" {
		toPhone = &phone{Number: recipient.Phone}
	}
	var fromPhone *phone
	if shipper.Phone != "" {
		fromPhone = &phone{Number: shipper.Phone}
	}

	lines := []string{recipient.Address.Line1}
	if recipient.Address.Line2 != "" {
		lines = append(lines, recipient.Address.Line2)
	}

	descriptions := make([]string, 0, len(r.Items))
	for _, it := range r.Items {
		descriptions = append(descriptions, it.Name)
	}
	description := truncateRunes(strings.Join(descriptions, ", "), maxDescriptionRunes)

	charge := shipmentCharge{Type: "01"}
	charge.BillShipper.AccountNumber = c.cfg.AccountNumber

	weight := r.WeightKg.StringFixed(1)
	opts := &serviceOptions{}
	opts.DeclaredValue.CurrencyCode = "GBP"
	opts.DeclaredValue.MonetaryValue = r.DeclaredValue.StringFixed(2)

	return shipRequest{
		ShipmentRequest: shipmentRequest{
			Request: requestInfo{
				RequestOption:        "nonvalidate",
				TransactionReference: transactionReference{CustomerContext: r.OrderNumber},
			},
			Shipment: shipment{
				Description: description,
				Shipper: party{
					Name:          shipper.Name,
					ShipperNumber: c.cfg.AccountNumber,
					Phone:         fromPhone,
					Address: address{
						AddressLine: []string{shipper.Line1},
						City:        shipper.City,
						PostalCode:  shipper.PostalCode,
						CountryCode: shipper.CountryCode,
					},
				},
				ShipTo: party{
					Name:          recipient.Name,
					AttentionName: recipient.Name,
					Phone:         toPhone,
					EMailAddress:  recipient.Email,
					Address: address{
						AddressLine:       lines,
						City:              recipient.Address.City,
						StateProvinceCode: recipient.Address.State,
						PostalCode:        recipient.Address.PostalCode,
						CountryCode:       recipient.Address.CountryCode,
					},
				},
				PaymentInformation: paymentInformation{ShipmentCharge: []shipmentCharge{charge}},
				Service:            codeDescription{Code: c.cfg.ServiceCode},
				Package: []pkg{{
					Description: description,
					Packaging:   codeDescription{Code: "02"},
					PackageWeight: packageWeight{
						UnitOfMeasurement: codeDescription{Code: "KGS"},
						Weight:            weight,
					},
					PackageServiceOptions: opts,
				}},
				ReferenceNumber: &referenceNumber{Value: r.OrderNumber},
			},
			Label: labelSpec{LabelImageFormat: codeDescription{Code: labelFormat}},
		},
	}
}

func parseActivityTime(date, clock string, fallback time.Time) time.Time {
	if date == "" {
		return fallback
	}
	if clock == "" {
		clock = "000000"
	}
	t, err := time.Parse("20060102150405", date+clock)
	if err != nil {
		return fallback
	}
	return t.UTC()
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
