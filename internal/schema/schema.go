package schema

// Record kinds persisted by the API. Field names match the wire format of the
// stored documents, so the same tags serve both JSON and BSON.
//
// None of the records carry their store identifier; the identifier exists only
// on the stored document and is assigned by the store on insert.

// Collection names, one per record kind with independent identity. The mapping
// is fixed here and never derived from type names.
const (
	CollectionProduct = "product"
	CollectionOrder   = "order"
	CollectionUser    = "user"
)

// User is a registered customer account.
type User struct {
	Name     string `json:"name" bson:"name"`
	Email    string `json:"email" bson:"email"`
	Address  string `json:"address,omitempty" bson:"address,omitempty"`
	Age      *int   `json:"age,omitempty" bson:"age,omitempty"`
	IsActive bool   `json:"is_active" bson:"is_active"`
}

// Product is a catalog entry. Mutable once persisted, unlike orders.
type Product struct {
	Title       string  `json:"title" bson:"title"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64 `json:"price" bson:"price"`
	Category    string  `json:"category" bson:"category"`
	InStock     bool    `json:"in_stock" bson:"in_stock"`
	ImageURL    string  `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Rating      float64 `json:"rating" bson:"rating"`
}

// OrderItem is one line of an order. Title and price are snapshots taken at
// purchase time; later edits to the referenced product must not change them.
type OrderItem struct {
	ProductID string  `json:"product_id" bson:"product_id"`
	Title     string  `json:"title" bson:"title"`
	Price     float64 `json:"price" bson:"price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

// CustomerInfo is the checkout contact embedded in an order.
type CustomerInfo struct {
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email" bson:"email"`
	Address string `json:"address" bson:"address"`
}

// Order is an immutable historical record of a purchase. Subtotal, tax and
// total are caller-supplied; the server does not recompute them from items.
type Order struct {
	Items    []OrderItem  `json:"items" bson:"items"`
	Subtotal float64      `json:"subtotal" bson:"subtotal"`
	Tax      float64      `json:"tax" bson:"tax"`
	Total    float64      `json:"total" bson:"total"`
	Customer CustomerInfo `json:"customer" bson:"customer"`
	Status   string       `json:"status" bson:"status"`
}
