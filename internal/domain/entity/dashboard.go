package entity

// ProductSale is one entry of the best/worst sellers overview. The backend
// serializes the aggregated quantity as a string.
type ProductSale struct {
	ProductID     int64  `json:"product_id"`
	Name          string `json:"name"`
	TotalQuantity string `json:"total_quantity"`
}

// SalesOverview holds the best and worst selling products. The field names on
// the wire contain spaces; that is the backend's contract, not a typo.
type SalesOverview struct {
	BestSellers  []ProductSale `json:"best sellers"`
	WorstSellers []ProductSale `json:"worst sellers"`
}

// MonthlyRate is the profit summary for the current month.
type MonthlyRate struct {
	Month       int     `json:"month"`
	Year        int     `json:"year"`
	TotalProfit float64 `json:"total_profit"`
}

// ProfitDetail is one product's all-time profit contribution.
type ProfitDetail struct {
	Product      string  `json:"product"`
	QuantitySold int     `json:"quantity_sold"`
	Profit       float64 `json:"profit"`
}
