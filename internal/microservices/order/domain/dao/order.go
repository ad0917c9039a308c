package dao

type MenuItem struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Order struct {
	ID            int    `json:"id"`
	TableNumber   string `json:"table_number"`
	CreatedAt     string `json:"created_at"` // "YYYY-MM-DD HH:MM:SS"
	PaymentStatus string `json:"payment_status"`
}

// OrderItem is a snapshot of a menu line at order time. Name and price
// are copied, not referenced, so later catalog edits never rewrite
// historical orders.
type OrderItem struct {
	ID       int     `json:"id"`
	OrderID  int     `json:"order_id"`
	ItemName string  `json:"item_name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderSummary is one row of the admin order listing.
type OrderSummary struct {
	ID            int     `json:"id"`
	TableNumber   string  `json:"table_number"`
	CreatedAt     string  `json:"created_at"`
	PaymentStatus string  `json:"payment_status"`
	Total         float64 `json:"total"`
}

const (
	StatusUnpaid     = "unpaid"
	StatusPaidPrefix = "paid_"
)
