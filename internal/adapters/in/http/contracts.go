package http

import "time"

// Error is the JSON payload of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderRequest is the intake payload for creating an order.
type NewOrderRequest struct {
	OrderNumber string `json:"orderNumber"`
	JobName     string `json:"jobName"`
	Quantity    int    `json:"quantity"`
	BagType     string `json:"bagType,omitempty"`
	Stage       string `json:"stage"`
}

// CreatedResponse carries the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// OrderResponse is one order row of the board views.
type OrderResponse struct {
	ID            string `json:"id"`
	OrderNumber   string `json:"orderNumber"`
	JobName       string `json:"jobName"`
	Quantity      int    `json:"quantity"`
	BagType       string `json:"bagType,omitempty"`
	Stage         string `json:"stage"`
	Status        string `json:"status"`
	BillingStatus string `json:"billingStatus"`
	Forwarded     bool   `json:"forwarded"`
}

// StageSlotResponse is one row of the slot occupancy view. The occupant
// fields are omitted for a free slot.
type StageSlotResponse struct {
	Stage       string  `json:"stage"`
	OccupantID  *string `json:"occupantId,omitempty"`
	OrderNumber *string `json:"orderNumber,omitempty"`
	JobName     *string `json:"jobName,omitempty"`
}

// ScanResponse carries the parameters reported by the scanning device.
type ScanResponse struct {
	Parameters map[string]string `json:"parameters"`
}

// VerifyRequest carries the measured parameters to check against the
// stage schema.
type VerifyRequest struct {
	Parameters map[string]string `json:"parameters"`
}

// VerifiedResponse echoes the verification record produced by a successful
// check.
type VerifiedResponse struct {
	OrderID    string            `json:"orderId"`
	Parameters map[string]string `json:"parameters"`
	VerifiedAt time.Time         `json:"verifiedAt"`
}

// AdmitRequest carries the measured parameters backing the admission. It is
// empty for stages that admit without verification.
type AdmitRequest struct {
	Parameters map[string]string `json:"parameters,omitempty"`
}

// PackageRequest carries package dimensions in centimeters and weight in
// kilograms.
type PackageRequest struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}

// PackageResponse is one package row of the per-order listing.
type PackageResponse struct {
	ID      string  `json:"id"`
	OrderID string  `json:"orderId"`
	Length  float64 `json:"length"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Weight  float64 `json:"weight"`
}

// LabelRequest carries the roll metadata printed on a package label.
type LabelRequest struct {
	RollNo     string `json:"rollNo"`
	Color      string `json:"color"`
	GSM        string `json:"gsm"`
	Pattern    string `json:"pattern"`
	FabricType string `json:"fabricType"`
	Treatment  string `json:"treatment"`
	Technology string `json:"technology"`
}
