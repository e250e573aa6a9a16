package models

// UserLocation — последняя известная геопозиция пользователя.
type UserLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city,omitempty"`
}

// CacheStats — сводка по содержимому кеша времён намаза.
type CacheStats struct {
	TotalItems int      `json:"total_items"`
	TotalSize  string   `json:"total_size"`
	Cities     []string `json:"cities"`
}
