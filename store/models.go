package store

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sumup/hostedpay"
)

type productRecord struct {
	SKU         string `gorm:"primaryKey"`
	Name        string
	Description string
	Price       decimal.Decimal `gorm:"type:text"`
	TaxRate     decimal.Decimal `gorm:"type:text"`
}

func (productRecord) TableName() string { return "products" }

type addressColumns struct {
	FirstName  string
	LastName   string
	Address1   string
	PostalCode string
	City       string
	Country    string
	Phone      string
}

type orderRecord struct {
	ID          uint            `gorm:"primaryKey"`
	Number      string          `gorm:"uniqueIndex;not null"`
	Total       decimal.Decimal `gorm:"type:text"`
	ShipTotal   decimal.Decimal `gorm:"type:text"`
	ItemCount   int
	Token       string
	Email       string
	HasBill     bool
	BillAddress addressColumns `gorm:"embedded;embeddedPrefix:bill_"`
	HasShip     bool
	ShipAddress addressColumns   `gorm:"embedded;embeddedPrefix:ship_"`
	LineItems   []lineItemRecord `gorm:"foreignKey:OrderID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (orderRecord) TableName() string { return "orders" }

type lineItemRecord struct {
	ID         uint `gorm:"primaryKey"`
	OrderID    uint `gorm:"index"`
	Position   int
	ProductSKU string
	Product    productRecord `gorm:"foreignKey:ProductSKU;references:SKU"`
	Quantity   int
}

func (lineItemRecord) TableName() string { return "line_items" }

func newOrderRecord(order *hostedpay.Order) *orderRecord {
	rec := &orderRecord{
		Number:    order.Number,
		Total:     order.Total,
		ShipTotal: order.ShipTotal,
		ItemCount: order.ItemCount,
		Token:     order.Token,
		Email:     order.Email,
	}
	if order.BillAddress != nil {
		rec.HasBill = true
		rec.BillAddress = addressColumns(*order.BillAddress)
	}
	if order.ShipAddress != nil {
		rec.HasShip = true
		rec.ShipAddress = addressColumns(*order.ShipAddress)
	}
	for i, item := range order.LineItems {
		rec.LineItems = append(rec.LineItems, lineItemRecord{
			Position:   i,
			ProductSKU: item.Product.ID,
			Quantity:   item.Quantity,
		})
	}
	return rec
}

func newProductRecord(p hostedpay.Product) productRecord {
	return productRecord{
		SKU:         p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		TaxRate:     p.TaxRate,
	}
}

func (r *orderRecord) toOrder() *hostedpay.Order {
	order := &hostedpay.Order{
		ID:        strconv.FormatUint(uint64(r.ID), 10),
		Number:    r.Number,
		Total:     r.Total,
		ShipTotal: r.ShipTotal,
		ItemCount: r.ItemCount,
		Token:     r.Token,
		Email:     r.Email,
	}
	if r.HasBill {
		addr := hostedpay.Address(r.BillAddress)
		order.BillAddress = &addr
	}
	if r.HasShip {
		addr := hostedpay.Address(r.ShipAddress)
		order.ShipAddress = &addr
	}
	for _, item := range r.LineItems {
		order.LineItems = append(order.LineItems, hostedpay.LineItem{
			Product: hostedpay.Product{
				ID:          item.Product.SKU,
				Name:        item.Product.Name,
				Description: item.Product.Description,
				Price:       item.Product.Price,
				TaxRate:     item.Product.TaxRate,
			},
			Quantity: item.Quantity,
		})
	}
	return order
}
