package models

import "time"

// ===============================
// Order
// ===============================

type Order struct {
	BaseModel

	CustomerID string `gorm:"size:36;index" json:"customer_id"`

	// Date is the calendar date the order was placed (2006-01-02).
	Date string `gorm:"size:10" json:"date"`

	Status         string  `gorm:"size:20;default:'processing'" json:"status"`
	TrackingNumber string  `gorm:"size:50" json:"tracking_number,omitempty"`
	Total          float64 `json:"total"`

	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TrackingHistory []TrackingEvent `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"tracking_history"`
}

// ComputeTotal derives the order total from its items.
func (o *Order) ComputeTotal() float64 {
	var total float64
	for _, it := range o.Items {
		total += float64(it.Quantity) * it.UnitPrice
	}
	return total
}

type OrderItem struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	OrderID string `gorm:"size:36;index" json:"order_id"`

	Name      string  `gorm:"size:100;not null" json:"name"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"not null" json:"unit_price"`
}

// TrackingEvent is one append-only entry of an order's tracking history.
type TrackingEvent struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	OrderID string `gorm:"size:36;index" json:"order_id"`

	Status      string `gorm:"size:20" json:"status"`
	Date        string `gorm:"size:10" json:"date"`
	Time        string `gorm:"size:20" json:"time"`
	Location    string `gorm:"size:100" json:"location,omitempty"`
	Description string `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
}
