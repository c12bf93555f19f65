package hostedpay

// ProtocolVersion is the payment request version whose field order this
// package signs.
const ProtocolVersion = "0004"

// Names of the payment request fields.
const (
	FieldAction              = "pmt_action"
	FieldVersion             = "pmt_version"
	FieldSellerID            = "pmt_sellerid"
	FieldSellerIBAN          = "pmt_selleriban"
	FieldID                  = "pmt_id"
	FieldOrderID             = "pmt_orderid"
	FieldReference           = "pmt_reference"
	FieldDueDate             = "pmt_duedate"
	FieldUserLocale          = "pmt_userlocale"
	FieldAmount              = "pmt_amount"
	FieldCurrency            = "pmt_currency"
	FieldOKReturn            = "pmt_okreturn"
	FieldErrorReturn         = "pmt_errorreturn"
	FieldCancelReturn        = "pmt_cancelreturn"
	FieldDelayedPayReturn    = "pmt_delayedpayreturn"
	FieldEscrow              = "pmt_escrow"
	FieldEscrowChangeAllowed = "pmt_escrowchangeallowed"
	FieldBuyerName           = "pmt_buyername"
	FieldBuyerAddress        = "pmt_buyeraddress"
	FieldBuyerPostalCode     = "pmt_buyerpostalcode"
	FieldBuyerCity           = "pmt_buyercity"
	FieldBuyerCountry        = "pmt_buyercountry"
	FieldBuyerPhone          = "pmt_buyerphone"
	FieldBuyerEmail          = "pmt_buyeremail"
	FieldDeliveryName        = "pmt_deliveryname"
	FieldDeliveryAddress     = "pmt_deliveryaddress"
	FieldDeliveryPostalCode  = "pmt_deliverypostalcode"
	FieldDeliveryCity        = "pmt_deliverycity"
	FieldDeliveryCountry     = "pmt_deliverycountry"
	FieldDeliveryPhone       = "pmt_deliveryphone"
	FieldSellerCosts         = "pmt_sellercosts"
	FieldRows                = "pmt_rows"
	FieldCharset             = "pmt_charset"
	FieldCharsetHTTP         = "pmt_charsethttp"
	FieldHashVersion         = "pmt_hashversion"
	FieldKeyGeneration       = "pmt_keygeneration"
	FieldHash                = "pmt_hash"
	FieldCustomData          = "custom_data"
)

// Prefixes of the per-row fields. The 1-based row number is appended.
const (
	FieldRowName               = "pmt_row_name"
	FieldRowDescription        = "pmt_row_desc"
	FieldRowQuantity           = "pmt_row_quantity"
	FieldRowUnit               = "pmt_row_unit"
	FieldRowDeliveryDate       = "pmt_row_deliverydate"
	FieldRowPriceNet           = "pmt_row_price_net"
	FieldRowVAT                = "pmt_row_vat"
	FieldRowDiscountPercentage = "pmt_row_discountpercentage"
	FieldRowType               = "pmt_row_type"
)
