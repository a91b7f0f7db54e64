package analytics

import (
	"encoding/json"
	"time"
)

// Column names of the denormalized orders table.
const (
	ColOrderID          = "order_id"
	ColCustomerID       = "customer_id"
	ColCustomerUniqueID = "customer_unique_id"
	ColCustomerState    = "customer_state"
	ColCustomerCity     = "customer_city"
	ColPurchasedAt      = "order_purchase_timestamp"
	ColPrice            = "price"
)

// OrderColumns lists every column an orders source must provide.
var OrderColumns = []string{
	ColOrderID,
	ColCustomerID,
	ColCustomerUniqueID,
	ColCustomerState,
	ColCustomerCity,
	ColPurchasedAt,
	ColPrice,
}

// OrderLine is one row of the orders table. An order with several items
// appears once per item, so OrderID is not unique.
type OrderLine struct {
	OrderID          string    `json:"order_id" db:"order_id"`
	CustomerID       string    `json:"customer_id" db:"customer_id"`
	CustomerUniqueID string    `json:"customer_unique_id" db:"customer_unique_id"`
	CustomerState    string    `json:"customer_state" db:"customer_state"`
	CustomerCity     string    `json:"customer_city" db:"customer_city"`
	PurchasedAt      time.Time `json:"order_purchase_timestamp" db:"order_purchase_timestamp"`
	Price            float64   `json:"price" db:"price"`
}

type DailySummary struct {
	Day        time.Time `json:"day"`
	OrderCount int       `json:"order_count"`
	Revenue    float64   `json:"revenue"`
}

type StateDemographic struct {
	State         string `json:"state"`
	CustomerCount int    `json:"customer_count"`
}

// CustomerRFM holds recency, frequency and monetary value for one
// (customer_unique_id, state, city) group.
type CustomerRFM struct {
	CustomerUniqueID string  `json:"customer_unique_id"`
	State            string  `json:"state"`
	City             string  `json:"city"`
	StateName        *string `json:"state_name"`
	Frequency        int     `json:"frequency"`
	Monetary         float64 `json:"monetary"`
	Recency          int     `json:"recency"`
}

type StateRFMSummary struct {
	State               string  `json:"state"`
	StateName           *string `json:"state_name"`
	CountCustomer       int     `json:"count_customer"`
	TotalFrequency      int     `json:"total_frequency"`
	MaxFrequency        int     `json:"max_frequency"`
	TotalMonetary       float64 `json:"total_monetary"`
	MaxMonetary         float64 `json:"max_monetary"`
	MedianRecency       float64 `json:"median_recency"`
	MinRecency          int     `json:"min_recency"`
	PercentageFrequency float64 `json:"percentage_frequency"`
	PercentageMonetary  float64 `json:"percentage_monetary"`
}

// StateRFMGeo is a state summary joined with its geographic reference row.
// Geometry fields stay nil when the state has no reference row.
type StateRFMGeo struct {
	StateRFMSummary
	CentroidLatitude  *float64        `json:"centroid_latitude"`
	CentroidLongitude *float64        `json:"centroid_longitude"`
	Geometry          json.RawMessage `json:"geometry,omitempty"`
}

// RFMResult groups the three tables produced by BuildRFM.
type RFMResult struct {
	Customers     []CustomerRFM     `json:"customers"`
	States        []StateRFMSummary `json:"states"`
	StatesWithGeo []StateRFMGeo     `json:"states_with_geo"`
}
