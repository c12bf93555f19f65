package hostedpay

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFieldsExtractsOrder(t *testing.T) {
	t.Parallel()

	gw := newTestGateway(t, testConfig(), nil)
	f, err := gw.Fields(testOrder())
	if err != nil {
		t.Fatalf("Fields() error = %v", err)
	}

	tests := map[string]struct {
		got  *string
		want string
	}{
		"payment id":       {f.PaymentID, "R123"},
		"order id":         {f.OrderID, "R123"},
		"reference":        {f.Reference, "1232"},
		"amount":           {f.Amount, "34,90"},
		"seller costs":     {f.SellerCosts, "4,90"},
		"ok return":        {f.OKReturn, "http://127.0.0.1/ok/42/"},
		"delayed return":   {f.DelayedPayReturn, "http://127.0.0.1/delayed/42/"},
		"buyer name":       {f.Buyer.Name, "Matti Meikalainen"},
		"buyer address":    {f.Buyer.Address, "&Aring;kerlundinkatu 5 &amp; 7"},
		"buyer country":    {f.Buyer.Country, "FI"},
		"buyer phone":      {f.Buyer.Phone, "+358401234567"},
		"buyer email":      {f.Buyer.Email, "matti@example.com"},
		"delivery name":    {f.Delivery.Name, "Maija &Ouml;hman"},
		"delivery postal":  {f.Delivery.PostalCode, "00100"},
		"delivery country": {f.Delivery.Country, "FI"},
	}
	for name, tt := range tests {
		if tt.got == nil {
			t.Fatalf("%s: expected value", name)
		}
		if *tt.got != tt.want {
			t.Fatalf("%s: got %q want %q", name, *tt.got, tt.want)
		}
	}
	if f.SellerIBAN != nil {
		t.Fatalf("expected seller iban to be absent")
	}
	if f.Delivery.Email != nil {
		t.Fatalf("expected delivery email to be absent")
	}
}

func TestFieldsRequiresOrder(t *testing.T) {
	t.Parallel()

	gw := newTestGateway(t, testConfig(), nil)
	if _, err := gw.Fields(nil); !errors.Is(err, ErrMissingOrder) {
		t.Fatalf("expected ErrMissingOrder got %v", err)
	}
}

func TestFieldsWithoutAddresses(t *testing.T) {
	t.Parallel()

	gw := newTestGateway(t, testConfig(), nil)
	order := testOrder()
	order.BillAddress = nil
	order.ShipAddress = nil

	f, err := gw.Fields(order)
	if err != nil {
		t.Fatalf("Fields() error = %v", err)
	}
	for name, value := range map[string]*string{
		"buyer name":       f.Buyer.Name,
		"buyer address":    f.Buyer.Address,
		"buyer country":    f.Buyer.Country,
		"delivery name":    f.Delivery.Name,
		"delivery city":    f.Delivery.City,
		"delivery country": f.Delivery.Country,
	} {
		if value == nil || *value != "" {
			t.Fatalf("%s: expected blank value got %v", name, value)
		}
	}
}

func TestProductRows(t *testing.T) {
	t.Parallel()

	gw := newTestGateway(t, testConfig(), nil)
	rows := gw.ProductRows(testOrder())
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows got %d", len(rows))
	}

	want := []ProductRow{
		{
			Name:               "Kolmikulmainen hattu",
			Description:        "Hattu, jossa on kolme kulmaa.",
			Quantity:           "2",
			Unit:               "kpl",
			DeliveryDate:       "5.3.2024",
			PriceNet:           "10,00",
			VAT:                "24,00",
			DiscountPercentage: "0,00",
			Type:               RowTypeMerchandise,
		},
		{
			Name:               "Kahvimuki",
			Description:        "Kasintehty muki.",
			Quantity:           "1",
			Unit:               "kpl",
			DeliveryDate:       "5.3.2024",
			PriceNet:           "14,90",
			VAT:                "24,00",
			DiscountPercentage: "0,00",
			Type:               RowTypeMerchandise,
		},
		{
			Name:               "Shipping",
			Description:        "product",
			Quantity:           "1",
			Unit:               "kpl",
			DeliveryDate:       "5.3.2024",
			PriceNet:           "4,90",
			VAT:                "0,00",
			DiscountPercentage: "0,00",
			Type:               RowTypeShipping,
		},
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Fatalf("row %d: got %+v want %+v", i+1, rows[i], want[i])
		}
	}
}

func TestProductRowsMergeRepeatedProducts(t *testing.T) {
	t.Parallel()

	gw := newTestGateway(t, testConfig(), nil)
	order := testOrder()
	hat := order.LineItems[0].Product
	order.LineItems = append(order.LineItems, LineItem{Product: hat, Quantity: 3})

	rows := gw.ProductRows(order)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows got %d", len(rows))
	}
	if rows[0].Name != "Kolmikulmainen hattu" || rows[0].Quantity != "5" {
		t.Fatalf("expected merged hat row, got %+v", rows[0])
	}
	if rows[1].Name != "Kahvimuki" {
		t.Fatalf("expected first-seen order, got %+v", rows[1])
	}
}

func TestProductRowsShippingOnly(t *testing.T) {
	t.Parallel()

	gw := newTestGateway(t, testConfig(), nil)
	order := testOrder()
	order.LineItems = nil
	order.ShipTotal = decimal.Zero

	rows := gw.ProductRows(order)
	if len(rows) != 1 {
		t.Fatalf("expected only the shipping row, got %d", len(rows))
	}
	if rows[0].Type != RowTypeShipping || rows[0].PriceNet != "0,00" {
		t.Fatalf("unexpected shipping row %+v", rows[0])
	}
}

func TestProductRowsDeliveryDateFollowsClock(t *testing.T) {
	t.Parallel()

	gw, err := New(testConfig(), nil, WithClock(func() time.Time {
		return time.Date(2025, 12, 24, 23, 0, 0, 0, time.UTC)
	}))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	rows := gw.ProductRows(testOrder())
	if got := rows[0].DeliveryDate; got != "24.12.2025" {
		t.Fatalf("unexpected delivery date %q", got)
	}
}

func TestCountryCode(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"fi":      "FI",
		"Finland": "FI",
		"S":       "S",
		"":        "",
		"öland":   "ÖL",
	}
	for in, want := range tests {
		if got := countryCode(in); got != want {
			t.Fatalf("countryCode(%q) = %q want %q", in, got, want)
		}
	}
}

func TestPartyNameRequiresAnyNamePart(t *testing.T) {
	t.Parallel()

	if got := *partyFields(&Address{City: "Oulu"}).Name; got != "" {
		t.Fatalf("expected blank name got %q", got)
	}
	if got := *partyFields(&Address{LastName: "Virtanen"}).Name; got != " Virtanen" {
		t.Fatalf("unexpected name %q", got)
	}
}
