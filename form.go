package hostedpay

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// FormField is one hidden input of the redirect form.
type FormField struct {
	Name  string
	Value string
}

// Form is the signed payment request, ready to be rendered as an
// auto-submitting HTML form that posts to Action.
type Form struct {
	Action string
	Method string
	Fields []FormField
}

// BuildForm extracts, formats and signs order into the hidden fields of the
// redirect form. pmt_hash is always the last field.
func (g *Gateway) BuildForm(order *Order) (*Form, error) {
	f, err := g.Fields(order)
	if err != nil {
		return nil, err
	}
	cfg := g.cfg
	form := &Form{
		Action: cfg.ServerURL,
		Method: http.MethodPost,
	}
	add := func(name string, value *string) {
		if value != nil {
			form.Fields = append(form.Fields, FormField{Name: name, Value: *value})
		}
	}

	add(FieldAction, f.Action)
	add(FieldVersion, f.Version)
	if cfg.SellerID != "" {
		add(FieldSellerID, &cfg.SellerID)
	}
	add(FieldSellerIBAN, f.SellerIBAN)
	add(FieldID, f.PaymentID)
	add(FieldOrderID, f.OrderID)
	add(FieldReference, f.Reference)
	add(FieldDueDate, f.DueDate)
	add(FieldUserLocale, &cfg.UserLocale)
	add(FieldAmount, f.Amount)
	add(FieldCurrency, f.Currency)
	add(FieldOKReturn, f.OKReturn)
	add(FieldErrorReturn, f.ErrorReturn)
	add(FieldCancelReturn, f.CancelReturn)
	add(FieldDelayedPayReturn, f.DelayedPayReturn)
	add(FieldEscrow, f.Escrow)
	add(FieldEscrowChangeAllowed, f.EscrowChangeAllowed)

	add(FieldBuyerName, f.Buyer.Name)
	add(FieldBuyerAddress, f.Buyer.Address)
	add(FieldBuyerPostalCode, f.Buyer.PostalCode)
	add(FieldBuyerCity, f.Buyer.City)
	add(FieldBuyerCountry, f.Buyer.Country)
	add(FieldBuyerPhone, f.Buyer.Phone)
	add(FieldBuyerEmail, f.Buyer.Email)

	add(FieldDeliveryName, f.Delivery.Name)
	add(FieldDeliveryAddress, f.Delivery.Address)
	add(FieldDeliveryPostalCode, f.Delivery.PostalCode)
	add(FieldDeliveryCity, f.Delivery.City)
	add(FieldDeliveryCountry, f.Delivery.Country)
	add(FieldDeliveryPhone, f.Delivery.Phone)

	add(FieldSellerCosts, f.SellerCosts)
	add(FieldRows, ptr(strconv.Itoa(len(f.Rows))))
	for i, row := range f.Rows {
		for _, pair := range rowPairs(i+1, row) {
			form.Fields = append(form.Fields, FormField{Name: pair.Name, Value: pair.Value})
		}
	}

	add(FieldCharset, &cfg.Charset)
	add(FieldCharsetHTTP, &cfg.CharsetHTTP)
	add(FieldHashVersion, &cfg.HashVersion)
	add(FieldKeyGeneration, &cfg.KeyGeneration)

	if cfg.CallbackVariant == CallbackVariantCustomData {
		data, err := EncodeCustomData(g.CustomDataFor(order))
		if err != nil {
			return nil, err
		}
		add(FieldCustomData, &data)
	}

	add(FieldHash, ptr(g.digest(f)))
	return form, nil
}

// Get returns the value of the named field, or "" when absent.
func (f *Form) Get(name string) string {
	for _, field := range f.Fields {
		if field.Name == name {
			return field.Value
		}
	}
	return ""
}

// Values returns the fields as url.Values.
func (f *Form) Values() url.Values {
	values := make(url.Values, len(f.Fields))
	for _, field := range f.Fields {
		values.Add(field.Name, field.Value)
	}
	return values
}

// EncodeLatin1 renders the form as an application/x-www-form-urlencoded body
// in ISO-8859-1, keeping field order. It fails when a value holds a character
// outside that charset.
func (f *Form) EncodeLatin1() (string, error) {
	enc := charmap.ISO8859_1.NewEncoder()
	var b strings.Builder
	for i, field := range f.Fields {
		value, err := enc.String(field.Value)
		if err != nil {
			return "", fmt.Errorf("hostedpay: encode %s as ISO-8859-1: %w", field.Name, err)
		}
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(field.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(value))
	}
	return b.String(), nil
}
