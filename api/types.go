package api

import (
	"github.com/shopspring/decimal"

	"cargo-cost/core/customs"
	"cargo-cost/core/tariff"
	"cargo-cost/core/types"
)

// ChargesRequest is the body of POST /api/v1/charges.
// A zero quantity means one container.
type ChargesRequest = tariff.ChargeRequest

// ChargesResponse is the result of a tariff calculation
type ChargesResponse struct {
	RequestID   string            `json:"request_id"`
	Category    string            `json:"category"`
	Size        string            `json:"size"`
	StorageDays int               `json:"storage_days"`
	Quantity    int               `json:"quantity"`
	Currency    types.Currency    `json:"currency"`
	Total       decimal.Decimal   `json:"total"`
	Breakdown   []tariff.LineItem `json:"breakdown"`
	Ignored     []string          `json:"ignored"`
}

func newChargesResponse(requestID string, res *tariff.ChargeResult) *ChargesResponse {
	ignored := res.Ignored
	if ignored == nil {
		ignored = []string{}
	}
	return &ChargesResponse{
		RequestID:   requestID,
		Category:    res.Category,
		Size:        res.Size,
		StorageDays: res.StorageDays,
		Quantity:    res.Quantity,
		Currency:    res.Currency,
		Total:       res.Total,
		Breakdown:   res.Breakdown,
		Ignored:     ignored,
	}
}

// ImportTaxRequest is the body of POST /api/v1/import-tax
type ImportTaxRequest = customs.Request

// ImportTaxResponse is the result of an import tax calculation
type ImportTaxResponse struct {
	RequestID       string          `json:"request_id"`
	HSCode          *customs.HSCode `json:"hs_code,omitempty"`
	ForeignCurrency types.Currency  `json:"foreign_currency"`
	LocalCurrency   types.Currency  `json:"local_currency"`
	customs.Result
}

// TariffResponse lists one service table
type TariffResponse struct {
	Service  tariff.Service `json:"service"`
	Currency types.Currency `json:"currency"`
	Rates    []tariff.Rate  `json:"rates"`
}

// ErrorBody is the error envelope of every failed request
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes a failure
type ErrorDetail struct {
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	RequestID string                 `json:"request_id,omitempty"`
	Context   map[string]interface{} `json:"context,omitempty"`
}
