package schema

// Machine-readable schema descriptions, served by GET /schema so database
// tooling can render and validate documents without hardcoding the shapes.

// FieldSpec describes one field of a record kind.
type FieldSpec struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Default  any      `json:"default,omitempty"`
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Of       string   `json:"of,omitempty"`
}

// Definition describes one record kind. Embedded kinds have no collection of
// their own; they live inside their parent record.
type Definition struct {
	Collection string      `json:"collection,omitempty"`
	Embedded   bool        `json:"embedded,omitempty"`
	Fields     []FieldSpec `json:"fields"`
}

func bound(v float64) *float64 { return &v }

// Definitions returns the schema of every record kind, keyed by kind name.
func Definitions() map[string]Definition {
	return map[string]Definition{
		"user": {
			Collection: CollectionUser,
			Fields: []FieldSpec{
				{Name: "name", Type: "string", Required: true},
				{Name: "email", Type: "email", Required: true},
				{Name: "address", Type: "string"},
				{Name: "age", Type: "integer", Min: bound(0), Max: bound(120)},
				{Name: "is_active", Type: "boolean", Default: true},
			},
		},
		"product": {
			Collection: CollectionProduct,
			Fields: []FieldSpec{
				{Name: "title", Type: "string", Required: true},
				{Name: "description", Type: "string"},
				{Name: "price", Type: "number", Required: true, Min: bound(0)},
				{Name: "category", Type: "string", Required: true},
				{Name: "in_stock", Type: "boolean", Default: true},
				{Name: "image_url", Type: "string"},
				{Name: "rating", Type: "number", Default: DefaultRating, Min: bound(0), Max: bound(5)},
			},
		},
		"order_item": {
			Embedded: true,
			Fields: []FieldSpec{
				{Name: "product_id", Type: "string", Required: true},
				{Name: "title", Type: "string", Required: true},
				{Name: "price", Type: "number", Required: true, Min: bound(0)},
				{Name: "quantity", Type: "integer", Required: true, Min: bound(1)},
			},
		},
		"customer_info": {
			Embedded: true,
			Fields: []FieldSpec{
				{Name: "name", Type: "string", Required: true},
				{Name: "email", Type: "email", Required: true},
				{Name: "address", Type: "string", Required: true},
			},
		},
		"order": {
			Collection: CollectionOrder,
			Fields: []FieldSpec{
				{Name: "items", Type: "array", Required: true, Of: "order_item"},
				{Name: "subtotal", Type: "number", Required: true, Min: bound(0)},
				{Name: "tax", Type: "number", Required: true, Min: bound(0)},
				{Name: "total", Type: "number", Required: true, Min: bound(0)},
				{Name: "customer", Type: "object", Required: true, Of: "customer_info"},
				{Name: "status", Type: "string", Default: DefaultOrderStatus},
			},
		},
	}
}
