package order

type Status string

const (
	StatusPending        Status = "pending"
	StatusPreparing      Status = "preparing"
	StatusOutForDelivery Status = "out-for-delivery"
	StatusDelivered      Status = "delivered"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusOutForDelivery, StatusDelivered:
		return true
	default:
		return false
	}
}

type Order struct {
	ID           string
	DeliverTo    string
	MobileNumber string
	Status       Status
	Dishes       []LineItem
}

// LineItem is a dish snapshot embedded in an order plus the ordered
// quantity. The snapshot fields are copied from the request as-is and are
// not checked against the dish collection.
type LineItem struct {
	ID          string
	Name        string
	Description string
	ImageURL    string
	Price       int64
	Quantity    int64
}
