package hostedpay

import "github.com/shopspring/decimal"

// Order is the read-only snapshot of a checkout order handed to the gateway.
type Order struct {
	// Internal identifier. Used to build the return URLs.
	ID string `json:"id"`
	// Human-readable order number.
	//
	// Example: R123456789
	Number string `json:"number" validate:"required"`
	// Grand total including shipping.
	Total decimal.Decimal `json:"total"`
	// Shipping part of Total.
	ShipTotal decimal.Decimal `json:"ship_total"`
	// Total number of units across all line items.
	ItemCount int `json:"item_count" validate:"gte=0"`
	// Line items in display order.
	LineItems []LineItem `json:"line_items" validate:"dive"`
	// Opaque token known only to the merchant and the buyer session.
	Token string `json:"token"`
	// Billing address. Nil when the buyer has not provided one.
	BillAddress *Address `json:"bill_address,omitempty"`
	// Shipping address. Nil when the buyer has not provided one.
	ShipAddress *Address `json:"ship_address,omitempty"`
	// Buyer contact email.
	Email string `json:"email"`
}

// LineItem pairs a product with the ordered quantity.
type LineItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity" validate:"gt=0"`
}

// Product describes a purchasable item.
type Product struct {
	ID          string          `json:"id" validate:"required"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	// Applicable tax rate as a fraction.
	//
	// Example: 0.24
	TaxRate decimal.Decimal `json:"tax_rate"`
}

// Address defines a billing or shipping address.
type Address struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Address1   string `json:"address1"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

// RowType tags a product row.
type RowType string

const (
	RowTypeMerchandise RowType = "1"
	RowTypeShipping    RowType = "2"
)

// ProductRow is one pmt_row_* block of the payment request. All text fields are
// already normalized and all amounts formatted.
type ProductRow struct {
	Name               string
	Description        string
	Quantity           string
	Unit               string
	DeliveryDate       string
	PriceNet           string
	VAT                string
	DiscountPercentage string
	Type               RowType
}
