package schema

import "fmt"

// Validation is explicit per kind: each function reads the untyped payload,
// applies defaults for absent optional fields and returns either a fully-typed
// record or a ValidationError listing every violated constraint. Unknown keys
// in the payload are ignored.

// Default values applied when an optional field is absent.
const (
	DefaultRating      = 4.5
	DefaultOrderStatus = "pending"
)

// ValidateProduct checks an untyped payload against the product schema.
func ValidateProduct(raw map[string]any) (*Product, error) {
	p := newPayload(raw)

	product := &Product{
		Title:       p.requiredString("title"),
		Description: p.optionalString("description", ""),
		Price:       p.requiredNumber("price", 0, unbounded),
		Category:    p.requiredString("category"),
		InStock:     p.optionalBool("in_stock", true),
		ImageURL:    p.optionalString("image_url", ""),
		Rating:      p.optionalNumber("rating", 0, 5, DefaultRating),
	}

	if len(p.errs) > 0 {
		return nil, &ValidationError{Kind: CollectionProduct, Fields: p.errs}
	}
	return product, nil
}

// ValidateUser checks an untyped payload against the user schema.
func ValidateUser(raw map[string]any) (*User, error) {
	p := newPayload(raw)

	user := &User{
		Name:     p.requiredString("name"),
		Email:    p.requiredEmail("email"),
		Address:  p.optionalString("address", ""),
		Age:      p.optionalInt("age", 0, 120),
		IsActive: p.optionalBool("is_active", true),
	}

	if len(p.errs) > 0 {
		return nil, &ValidationError{Kind: CollectionUser, Fields: p.errs}
	}
	return user, nil
}

// ValidateOrder checks an untyped payload against the order schema, including
// the embedded order items and customer info. Item order is preserved. An
// empty items array is accepted; only the presence of the field is required.
func ValidateOrder(raw map[string]any) (*Order, error) {
	p := newPayload(raw)

	order := &Order{
		Items:    p.orderItems("items"),
		Subtotal: p.requiredNumber("subtotal", 0, unbounded),
		Tax:      p.requiredNumber("tax", 0, unbounded),
		Total:    p.requiredNumber("total", 0, unbounded),
		Status:   p.optionalString("status", DefaultOrderStatus),
	}

	if customer, ok := p.requiredObject("customer"); ok {
		c := p.child(customer, "customer")
		order.Customer = CustomerInfo{
			Name:    c.requiredString("name"),
			Email:   c.requiredEmail("email"),
			Address: c.requiredString("address"),
		}
		p.adopt(c)
	}

	if len(p.errs) > 0 {
		return nil, &ValidationError{Kind: CollectionOrder, Fields: p.errs}
	}
	return order, nil
}

func (p *payload) orderItems(key string) []OrderItem {
	elems, ok := p.requiredArray(key)
	if !ok {
		return nil
	}

	items := make([]OrderItem, 0, len(elems))
	for i, elem := range elems {
		path := fmt.Sprintf("%s[%d]", key, i)
		obj, ok := elem.(map[string]any)
		if !ok {
			p.addError(path, "type", "expected object, got "+typeName(elem))
			continue
		}

		e := p.child(obj, path)
		items = append(items, OrderItem{
			ProductID: e.requiredString("product_id"),
			Title:     e.requiredString("title"),
			Price:     e.requiredNumber("price", 0, unbounded),
			Quantity:  e.requiredInt("quantity", 1, unbounded),
		})
		p.adopt(e)
	}
	return items
}
