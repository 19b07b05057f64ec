package domain

// AdminStats is four independent queries, not one snapshot; counts can
// disagree under concurrent writes.
type AdminStats struct {
	Users     int64   `json:"user"`
	Payments  int64   `json:"payment"`
	MenuItems int64   `json:"menuItem"`
	Revenue   float64 `json:"revenue"`
}

type CategorySales struct {
	Category string  `bson:"category" json:"category"`
	Quantity int64   `bson:"quantity" json:"quantity"`
	Revenue  float64 `bson:"revenue" json:"revenue"`
}
