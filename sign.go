package hostedpay

import (
	"strconv"

	"github.com/sumup/hostedpay/signature"
)

// signedField is one entry of a protocol version's digest field order.
type signedField struct {
	name  string
	value func(*Fields) *string
}

// signedFieldsV0004 lists the non-row fields hashed by protocol version 0004,
// in order. Absent values are skipped. Changing this table changes every
// digest and must be coordinated with the gateway.
var signedFieldsV0004 = []signedField{
	{FieldAction, func(f *Fields) *string { return f.Action }},
	{FieldVersion, func(f *Fields) *string { return f.Version }},
	{FieldSellerIBAN, func(f *Fields) *string { return f.SellerIBAN }},
	{FieldID, func(f *Fields) *string { return f.PaymentID }},
	{FieldOrderID, func(f *Fields) *string { return f.OrderID }},
	{FieldReference, func(f *Fields) *string { return f.Reference }},
	{FieldDueDate, func(f *Fields) *string { return f.DueDate }},
	{FieldAmount, func(f *Fields) *string { return f.Amount }},
	{FieldCurrency, func(f *Fields) *string { return f.Currency }},
	{FieldOKReturn, func(f *Fields) *string { return f.OKReturn }},
	{FieldErrorReturn, func(f *Fields) *string { return f.ErrorReturn }},
	{FieldCancelReturn, func(f *Fields) *string { return f.CancelReturn }},
	{FieldDelayedPayReturn, func(f *Fields) *string { return f.DelayedPayReturn }},
	{FieldEscrow, func(f *Fields) *string { return f.Escrow }},
	{FieldEscrowChangeAllowed, func(f *Fields) *string { return f.EscrowChangeAllowed }},
	{FieldBuyerName, func(f *Fields) *string { return f.Buyer.Name }},
	{FieldBuyerAddress, func(f *Fields) *string { return f.Buyer.Address }},
	{FieldBuyerPostalCode, func(f *Fields) *string { return f.Buyer.PostalCode }},
	{FieldBuyerCity, func(f *Fields) *string { return f.Buyer.City }},
	{FieldBuyerCountry, func(f *Fields) *string { return f.Buyer.Country }},
	{FieldDeliveryName, func(f *Fields) *string { return f.Delivery.Name }},
	{FieldDeliveryAddress, func(f *Fields) *string { return f.Delivery.Address }},
	{FieldDeliveryPostalCode, func(f *Fields) *string { return f.Delivery.PostalCode }},
	{FieldDeliveryCity, func(f *Fields) *string { return f.Delivery.City }},
	{FieldDeliveryCountry, func(f *Fields) *string { return f.Delivery.Country }},
	{FieldSellerCosts, func(f *Fields) *string { return f.SellerCosts }},
}

var signedFieldOrders = map[string][]signedField{
	ProtocolVersion: signedFieldsV0004,
}

// SignaturePayload returns the ordered pairs hashed for f: the protocol
// fields, then every product row, shipping last. The secret is added by
// [signature.Digest]. A nil f yields an empty payload.
func (g *Gateway) SignaturePayload(f *Fields) signature.Payload {
	if f == nil {
		return signature.Payload{}
	}
	order := signedFieldOrders[g.cfg.Version]
	payload := make(signature.Payload, 0, len(order)+9*len(f.Rows))
	for _, field := range order {
		payload = payload.AppendOptional(field.name, field.value(f))
	}
	for i, row := range f.Rows {
		payload = append(payload, rowPairs(i+1, row)...)
	}
	return payload
}

// Sign returns the pmt_hash digest of order.
func (g *Gateway) Sign(order *Order) (string, error) {
	f, err := g.Fields(order)
	if err != nil {
		return "", err
	}
	return g.digest(f), nil
}

func (g *Gateway) digest(f *Fields) string {
	return signature.Digest(g.SignaturePayload(f), g.cfg.Secret)
}

func rowPairs(n int, row ProductRow) []signature.Pair {
	suffix := strconv.Itoa(n)
	return []signature.Pair{
		{Name: FieldRowName + suffix, Value: row.Name},
		{Name: FieldRowDescription + suffix, Value: row.Description},
		{Name: FieldRowQuantity + suffix, Value: row.Quantity},
		{Name: FieldRowUnit + suffix, Value: row.Unit},
		{Name: FieldRowDeliveryDate + suffix, Value: row.DeliveryDate},
		{Name: FieldRowPriceNet + suffix, Value: row.PriceNet},
		{Name: FieldRowVAT + suffix, Value: row.VAT},
		{Name: FieldRowDiscountPercentage + suffix, Value: row.DiscountPercentage},
		{Name: FieldRowType + suffix, Value: string(row.Type)},
	}
}

// VerifySignature reports whether digest is the pmt_hash of order under the
// current configuration. Use it to check a stored or echoed request hash
// before trusting it.
func (g *Gateway) VerifySignature(order *Order, digest string) (bool, error) {
	want, err := g.Sign(order)
	if err != nil {
		return false, err
	}
	return signature.Equal(want, digest), nil
}
