package ups

import (
	"bytes"
	"encoding/json"
)

// Request and response shapes of the UPS Shipping and Tracking REST APIs,
// trimmed to the fields this service reads or writes.

type shipRequest struct {
	ShipmentRequest shipmentRequest `json:"ShipmentRequest"`
}

type shipmentRequest struct {
	Request  requestInfo `json:"Request"`
	Shipment shipment    `json:"Shipment"`
	Label    labelSpec   `json:"LabelSpecification"`
}

type requestInfo struct {
	RequestOption        string               `json:"RequestOption"`
	TransactionReference transactionReference `json:"TransactionReference"`
}

type transactionReference struct {
	CustomerContext string `json:"CustomerContext"`
}

type shipment struct {
	Description        string             `json:"Description,omitempty"`
	Shipper            party              `json:"Shipper"`
	ShipTo             party              `json:"ShipTo"`
	PaymentInformation paymentInformation `json:"PaymentInformation"`
	Service            codeDescription    `json:"Service"`
	Package            []pkg              `json:"Package"`
	ReferenceNumber    *referenceNumber   `json:"ReferenceNumber,omitempty"`
}

type party struct {
	Name          string  `json:"Name"`
	AttentionName string  `json:"AttentionName,omitempty"`
	ShipperNumber string  `json:"ShipperNumber,omitempty"`
	Phone         *phone  `json:"Phone,omitempty"`
	EMailAddress  string  `json:"EMailAddress,omitempty"`
	Address       address `json:"Address"`
}

type phone struct {
	Number string `json:"Number"`
}

type address struct {
	AddressLine       []string `json:"AddressLine"`
	City              string   `json:"City"`
	StateProvinceCode string   `json:"StateProvinceCode,omitempty"`
	PostalCode        string   `json:"PostalCode"`
	CountryCode       string   `json:"CountryCode"`
}

type paymentInformation struct {
	ShipmentCharge []shipmentCharge `json:"ShipmentCharge"`
}

type shipmentCharge struct {
	Type        string      `json:"Type"`
	BillShipper billShipper `json:"BillShipper"`
}

type billShipper struct {
	AccountNumber string `json:"AccountNumber"`
}

type codeDescription struct {
	Code        string `json:"Code"`
	Description string `json:"Description,omitempty"`
}

type pkg struct {
	Description           string          `json:"Description,omitempty"`
	Packaging             codeDescription `json:"Packaging"`
	PackageWeight         packageWeight   `json:"PackageWeight"`
	PackageServiceOptions *serviceOptions `json:"PackageServiceOptions,omitempty"`
}

type packageWeight struct {
	UnitOfMeasurement codeDescription `json:"UnitOfMeasurement"`
	Weight            string          `json:"Weight"`
}

type serviceOptions struct {
	DeclaredValue declaredValue `json:"DeclaredValue"`
}

type declaredValue struct {
	CurrencyCode  string `json:"CurrencyCode"`
	MonetaryValue string `json:"MonetaryValue"`
}

type referenceNumber struct {
	Value string `json:"Value"`
}

type labelSpec struct {
	LabelImageFormat codeDescription `json:"LabelImageFormat"`
}

type shipResponse struct {
	ShipmentResponse struct {
		ShipmentResults struct {
			ShipmentIdentificationNumber string         `json:"ShipmentIdentificationNumber"`
			PackageResults               packageResults `json:"PackageResults"`
		} `json:"ShipmentResults"`
	} `json:"ShipmentResponse"`
}

type packageResult struct {
	TrackingNumber string `json:"TrackingNumber"`
	ShippingLabel  struct {
		ImageFormat  codeDescription `json:"ImageFormat"`
		GraphicImage string          `json:"GraphicImage"`
	} `json:"ShippingLabel"`
}

// packageResults is an object for single-package shipments and an array
// otherwise.
type packageResults []packageResult

func (p *packageResults) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var many []packageResult
		if err := json.Unmarshal(trimmed, &many); err != nil {
			return err
		}
		*p = many
		return nil
	}
	var one packageResult
	if err := json.Unmarshal(trimmed, &one); err != nil {
		return err
	}
	*p = packageResults{one}
	return nil
}

type trackResponse struct {
	TrackResponse struct {
		Shipment []struct {
			Package []struct {
				TrackingNumber string     `json:"trackingNumber"`
				Activity       []activity `json:"activity"`
			} `json:"package"`
		} `json:"shipment"`
	} `json:"trackResponse"`
}

type activity struct {
	Date   string `json:"date"`
	Time   string `json:"time"`
	Status struct {
		Type        string `json:"type"`
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"status"`
}

type errorResponse struct {
	Response struct {
		Errors []struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"errors"`
	} `json:"response"`
}
