package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"MiniShop/internal/cart"
	"MiniShop/internal/catalog"
	"MiniShop/internal/journal"
)

const orderIDLayout = "20060102150405"

var ErrCartEmpty = errors.New("cart empty")

type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string { return "missing field: " + e.Field }

type Customer struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

// validate checks required fields in a fixed order and reports the
// first one missing. Only absent or empty values are rejected.
func (c Customer) validate() error {
	required := []struct{ name, value string }{
		{"name", c.Name},
		{"email", c.Email},
		{"address", c.Address},
		{"city", c.City},
		{"postal_code", c.PostalCode},
	}
	for _, f := range required {
		if f.value == "" {
			return MissingFieldError{Field: f.name}
		}
	}
	return nil
}

type OrderItem struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Total     float64 `json:"total"`
}

type Order struct {
	ID        string      `json:"id"`
	RecordID  string      `json:"record_id"`
	Customer  Customer    `json:"customer"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Timestamp time.Time   `json:"timestamp"`
}

type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (c ContactSubmission) validate() error {
	required := []struct{ name, value string }{
		{"name", c.Name},
		{"email", c.Email},
		{"message", c.Message},
	}
	for _, f := range required {
		if f.value == "" {
			return MissingFieldError{Field: f.name}
		}
	}
	return nil
}

type ContactRecord struct {
	RecordID  string    `json:"record_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type Receipt struct {
	OrderID string
	Total   float64
}

type Pipeline struct {
	Catalog  *catalog.Catalog
	Carts    *cart.Store
	Orders   journal.Appender
	Contacts journal.Appender
}

// Checkout turns the session's cart into an order record. Lines whose
// product no longer resolves are dropped from the order and the total.
// The append is best-effort and the cart is cleared unconditionally.
func (p *Pipeline) Checkout(ctx context.Context, session string, customer Customer) (Receipt, error) {
	lines := p.Carts.Lines(session)
	if len(lines) == 0 {
		return Receipt{}, ErrCartEmpty
	}

	if err := customer.validate(); err != nil {
		return Receipt{}, err
	}

	now := time.Now()
	items := make([]OrderItem, 0, len(lines))
	total := 0.0

	for _, l := range lines {
		prod, ok := p.Catalog.Get(l.ProductID)
		if !ok {
			continue
		}

		lineTotal := prod.Price * float64(l.Quantity)
		items = append(items, OrderItem{
			ProductID: prod.ID,
			Name:      prod.Name,
			Price:     prod.Price,
			Quantity:  l.Quantity,
			Total:     lineTotal,
		})
		total += lineTotal
	}

	o := Order{
		ID:        now.Format(orderIDLayout),
		RecordID:  uuid.NewString(),
		Customer:  customer,
		Items:     items,
		Total:     total,
		Timestamp: now,
	}

	// Best-effort append: a failed write never blocks the order.
	_ = p.Orders.Append(ctx, o)

	p.Carts.Clear(session)

	return Receipt{OrderID: o.ID, Total: total}, nil
}

// SubmitContact records a contact message. The append is best-effort;
// the caller always sees success once validation passes.
func (p *Pipeline) SubmitContact(ctx context.Context, sub ContactSubmission) error {
	if err := sub.validate(); err != nil {
		return err
	}

	rec := ContactRecord{
		RecordID:  uuid.NewString(),
		Name:      sub.Name,
		Email:     sub.Email,
		Phone:     sub.Phone,
		Message:   sub.Message,
		Timestamp: time.Now(),
	}

	_ = p.Contacts.Append(ctx, rec)

	return nil
}
