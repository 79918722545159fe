package dto

// InventorySummaryResponse agregados de inventario para reportes.
type InventorySummaryResponse struct {
	TotalStock   int64 `json:"total_stock"`
	ProductCount int64 `json:"product_count"`
}

// LowStockListResponse productos en o bajo su stock mínimo.
type LowStockListResponse struct {
	Total int               `json:"total"`
	Items []ProductResponse `json:"items"`
}
