package hostedpay

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	unitPieces       = "kpl"
	shippingName     = "Shipping"
	shippingDesc     = "product"
	shippingQuantity = "1"
	shippingVAT      = "0,00"
	zeroPercentage   = "0,00"
)

var hundred = decimal.NewFromInt(100)

// Fields is the canonical value set of one payment request. A nil pointer
// means the field is absent and is left out of both the form and the digest.
type Fields struct {
	Action              *string
	Version             *string
	SellerIBAN          *string
	PaymentID           *string
	OrderID             *string
	Reference           *string
	DueDate             *string
	Amount              *string
	Currency            *string
	OKReturn            *string
	ErrorReturn         *string
	CancelReturn        *string
	DelayedPayReturn    *string
	Escrow              *string
	EscrowChangeAllowed *string
	Buyer               Party
	Delivery            Party
	SellerCosts         *string
	Rows                []ProductRow
}

// Party holds the buyer or delivery contact fields.
type Party struct {
	Name       *string
	Address    *string
	PostalCode *string
	City       *string
	Country    *string
	Phone      *string
	Email      *string
}

// Fields extracts the canonical payment request values of order. Absent
// address data yields blank values; only a nil order is an error.
func (g *Gateway) Fields(order *Order) (*Fields, error) {
	if order == nil {
		return nil, ErrMissingOrder
	}
	cfg := g.cfg
	buyer := partyFields(order.BillAddress)
	buyer.Email = ptr(order.Email)
	return &Fields{
		Action:              ptr(cfg.Action),
		Version:             ptr(cfg.Version),
		SellerIBAN:          cloneString(cfg.SellerIBAN),
		PaymentID:           ptr(order.Number),
		OrderID:             ptr(order.Number),
		Reference:           ptr(ReferenceNumber(referenceSource(order.Number))),
		DueDate:             ptr(cfg.DueDate),
		Amount:              ptr(FormatAmount(order.Total.Sub(order.ShipTotal).Round(2))),
		Currency:            ptr(cfg.Currency),
		OKReturn:            ptr(returnURL(cfg.OKReturn, order.ID)),
		ErrorReturn:         ptr(returnURL(cfg.ErrorReturn, order.ID)),
		CancelReturn:        ptr(returnURL(cfg.CancelReturn, order.ID)),
		DelayedPayReturn:    ptr(returnURL(cfg.DelayedPayReturn, order.ID)),
		Escrow:              ptr(cfg.Escrow),
		EscrowChangeAllowed: ptr(cfg.EscrowChangeAllowed),
		Buyer:               buyer,
		Delivery:            partyFields(order.ShipAddress),
		SellerCosts:         ptr(FormatAmount(order.ShipTotal.Round(2))),
		Rows:                g.ProductRows(order),
	}, nil
}

// ProductRows returns one row per distinct product, in first-seen order, with
// the shipping row appended last. Quantities of repeated products are summed.
func (g *Gateway) ProductRows(order *Order) []ProductRow {
	if order == nil {
		return nil
	}
	date := deliveryDate(g.opts.clock())

	type entry struct {
		product  Product
		quantity int
	}
	var entries []entry
	seen := make(map[string]int, len(order.LineItems))
	for _, item := range order.LineItems {
		if id := item.Product.ID; id != "" {
			if i, ok := seen[id]; ok {
				entries[i].quantity += item.Quantity
				continue
			}
			seen[id] = len(entries)
		}
		entries = append(entries, entry{product: item.Product, quantity: item.Quantity})
	}

	rows := make([]ProductRow, 0, len(entries)+1)
	for _, e := range entries {
		rows = append(rows, ProductRow{
			Name:               e.product.Name,
			Description:        e.product.Description,
			Quantity:           strconv.Itoa(e.quantity),
			Unit:               unitPieces,
			DeliveryDate:       date,
			PriceNet:           FormatAmount(e.product.Price.Round(2)),
			VAT:                FormatAmount(e.product.TaxRate.Mul(hundred)),
			DiscountPercentage: zeroPercentage,
			Type:               RowTypeMerchandise,
		}.normalized())
	}
	rows = append(rows, ProductRow{
		Name:               shippingName,
		Description:        shippingDesc,
		Quantity:           shippingQuantity,
		Unit:               unitPieces,
		DeliveryDate:       date,
		PriceNet:           FormatAmount(order.ShipTotal.Round(2)),
		VAT:                shippingVAT,
		DiscountPercentage: zeroPercentage,
		Type:               RowTypeShipping,
	}.normalized())
	return rows
}

func (r ProductRow) normalized() ProductRow {
	return ProductRow{
		Name:               Normalize(r.Name),
		Description:        Normalize(r.Description),
		Quantity:           Normalize(r.Quantity),
		Unit:               Normalize(r.Unit),
		DeliveryDate:       Normalize(r.DeliveryDate),
		PriceNet:           Normalize(r.PriceNet),
		VAT:                Normalize(r.VAT),
		DiscountPercentage: Normalize(r.DiscountPercentage),
		Type:               RowType(Normalize(string(r.Type))),
	}
}

func partyFields(addr *Address) Party {
	if addr == nil {
		addr = &Address{}
	}
	name := ""
	if addr.FirstName != "" || addr.LastName != "" {
		name = addr.FirstName + " " + addr.LastName
	}
	return Party{
		Name:       ptr(Normalize(name)),
		Address:    ptr(Normalize(addr.Address1)),
		PostalCode: ptr(addr.PostalCode),
		City:       ptr(Normalize(addr.City)),
		Country:    ptr(countryCode(addr.Country)),
		Phone:      ptr(addr.Phone),
	}
}

// countryCode keeps the first two characters, upper-cased.
func countryCode(country string) string {
	runes := []rune(country)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}

func returnURL(base, orderID string) string {
	return base + "/" + orderID + "/"
}

// deliveryDate renders t as d.m.yyyy without zero padding.
func deliveryDate(t time.Time) string {
	return fmt.Sprintf("%d.%d.%d", t.Day(), int(t.Month()), t.Year())
}

func ptr(s string) *string {
	return &s
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	return ptr(*s)
}
