package entity

// Product represents a product row as the POS backend returns it on the
// inventory listing endpoints.
type Product struct {
	ID              int64        `json:"id"`
	Code            string       `json:"code"`
	Name            string       `json:"name"`
	SubcategoryID   int64        `json:"subcategory_id"`
	Price           float64      `json:"price"`
	ManufacturerID  int64        `json:"manufacture_id"`
	ImportCompanyID int64        `json:"import_company_id"`
	IsStockLow      bool         `json:"isStockLow"`
	Minimum         int          `json:"minimum"`
	Image           string       `json:"image"`
	Subcategory     *Subcategory `json:"subcategory,omitempty"`
}

// CatalogProduct is the slim product record the receipt form works with. The
// receipt engine snapshots name and price from it at selection time.
type CatalogProduct struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Manufacturer is a product manufacturer reference record.
type Manufacturer struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ImportCompany is an importing company reference record.
type ImportCompany struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
