package domain

import (
	"github.com/shopspring/decimal"
)

// TransformerRecord is one row of the customers table: a single
// transformer unit billed under a contract.
type TransformerRecord struct {
	Serial   string          `json:"serial" csv:"serial"`
	Contract string          `json:"contract" csv:"contract"`
	Customer string          `json:"customer" csv:"customer"`
	Power    decimal.Decimal `json:"power" csv:"power"`
}

// TransformerEntry is one transformer inside a contract summary.
type TransformerEntry struct {
	Serial string          `json:"serial"`
	Power  decimal.Decimal `json:"power"`
}

// ContractSummary groups the transformers billed under one contract id.
// Transformers keep input order; duplicate serials stay as separate
// entries (each row is one unit).
type ContractSummary struct {
	Contract         string             `json:"contract"`
	Transformers     []TransformerEntry `json:"transformers"`
	TransformerCount int                `json:"transformer_count"`
	TotalPower       decimal.Decimal    `json:"total_power"`
}

// CustomerSummary is the per-customer rollup returned by the reporting
// endpoints. Contracts are sorted ascending by contract id.
type CustomerSummary struct {
	Customer          string            `json:"customer"`
	Contracts         []ContractSummary `json:"contracts"`
	UniqueContracts   int               `json:"unique_contracts"`
	TotalTransformers int               `json:"total_transformers"`
	TotalPower        decimal.Decimal   `json:"total_power"`
}

// FleetStats is an aggregate view over the power column of all valid
// rows.
type FleetStats struct {
	RecordCount int64   `json:"record_count"`
	TotalPower  float64 `json:"total_power"`
	MeanPower   float64 `json:"mean_power"`
	MedianPower float64 `json:"median_power"`
	MinPower    float64 `json:"min_power"`
	MaxPower    float64 `json:"max_power"`
	StdDevPower float64 `json:"std_dev_power"`
}
