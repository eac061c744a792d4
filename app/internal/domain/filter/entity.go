package filter

// Entity is a company or product record as consumed by the filter layer.
// Price is only meaningful for products.
type Entity struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Address     Raw    `json:"address"`
	CategoryID  *int64 `json:"category_id,omitempty"`
	Rating      Raw    `json:"rating"`
	Price       Raw    `json:"price"`
}

type CategoryStatus string

const (
	CategoryActive   CategoryStatus = "active"
	CategoryInactive CategoryStatus = "inactive"
)

type Category struct {
	ID       int64          `json:"id"`
	Name     string         `json:"name"`
	Featured bool           `json:"featured"`
	Status   CategoryStatus `json:"status"`
}
