package dto

type OrderListDTO struct {
	ID             string  `json:"id"`
	Date           string  `json:"date"`
	Status         string  `json:"status"`
	Total          float64 `json:"total"`
	ItemCount      int     `json:"item_count"`
	TrackingNumber string  `json:"tracking_number,omitempty"`
}
