package models

// Requests for the prediction HTTP endpoints. Defined in domain for
// consistency and reuse.

type PredictRequest struct {
	Symbol string `query:"symbol" json:"symbol" validate:"required,max=128"`
}

type TokenInfoRequest struct {
	Symbol string `query:"symbol" json:"symbol" validate:"required,max=128"`
}

type HistoryRequest struct {
	Symbol   string `query:"symbol" json:"symbol" validate:"required,max=128"`
	Interval string `query:"interval" json:"interval" default:"5m" validate:"oneof=1m 5m 15m 1h"`
}
