package carrier

import (
	"context"

	"cellar-shop/internal/pkg/errs"
	"cellar-shop/internal/usecase/commands"
)

// Disabled stands in when no carrier credentials are configured.
type Disabled struct {
	name string
}

var _ commands.Carrier = Disabled{}

func NewDisabled(name string) Disabled {
	return Disabled{name: name}
}

func (d Disabled) Name() string { return d.name }

func (d Disabled) CreateShipment(context.Context, commands.ShipmentRequest) (*commands.ShipmentResult, error) {
	return nil, d.unavailable("create_shipment")
}

func (d Disabled) TrackShipment(context.Context, string) (*commands.TrackingStatus, error) {
	return nil, d.unavailable("track_shipment")
}

func (d Disabled) unavailable(op string) error {
	return &errs.CollaboratorError{
		Collaborator: "carrier",
		Op:           op,
		Err:          errs.New("carrier is not configured"),
	}
}
