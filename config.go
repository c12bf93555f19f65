package hostedpay

import (
	"fmt"
	"strings"
)

// CallbackVariant selects how an inbound return is tied back to its order.
type CallbackVariant string

const (
	// CallbackVariantDirectID reads the order number from the pmt_id parameter
	// the gateway echoes back. This is the canonical variant.
	CallbackVariantDirectID CallbackVariant = "direct_id"
	// CallbackVariantCustomData reads a JSON custom_data parameter carrying the
	// order number and token. Kept for gateways that do not echo pmt_id.
	CallbackVariantCustomData CallbackVariant = "custom_data"
)

// GatewayConfig enumerates every recognized gateway preference. It is supplied
// by the caller and never mutated once handed to [New].
type GatewayConfig struct {
	// Hosted payment page the buyer is redirected to.
	ServerURL string `mapstructure:"server_url" validate:"required,url"`
	// Shared secret appended to the signing string. Never transmitted.
	Secret string `mapstructure:"secret" validate:"required"`
	// Key generation number of Secret, as registered with the gateway.
	KeyGeneration string `mapstructure:"key_generation" validate:"required,numeric"`

	// Return parameter holding the transaction status.
	StatusParamKey string `mapstructure:"status_param_key" validate:"required"`
	// Value of StatusParamKey that marks a successful payment.
	SuccessValue string `mapstructure:"success_value" validate:"required"`
	// How returns are matched to orders.
	CallbackVariant CallbackVariant `mapstructure:"callback_variant" validate:"required,oneof=direct_id custom_data"`
	// Identifier of this payment method, echoed in custom_data.
	PaymentMethodID string `mapstructure:"payment_method_id"`

	Action      string  `mapstructure:"action" validate:"required"`
	Version     string  `mapstructure:"version" validate:"required,pmt_version"`
	Currency    string  `mapstructure:"currency" validate:"required,currency"`
	Charset     string  `mapstructure:"charset" validate:"required"`
	CharsetHTTP string  `mapstructure:"charset_http" validate:"required"`
	HashVersion string  `mapstructure:"hash_version" validate:"required,eq=SHA-1"`
	UserLocale  string  `mapstructure:"user_locale" validate:"required"`
	SellerID    string  `mapstructure:"seller_id"`
	SellerIBAN  *string `mapstructure:"seller_iban" validate:"omitempty,min=1"`
	DueDate     string  `mapstructure:"due_date" validate:"required"`

	Escrow              string `mapstructure:"escrow" validate:"required,oneof=Y N"`
	EscrowChangeAllowed string `mapstructure:"escrow_change_allowed" validate:"required,oneof=Y N"`

	// Return URL bases. The order identifier is appended as "/{id}/".
	OKReturn         string `mapstructure:"ok_return" validate:"required,url"`
	ErrorReturn      string `mapstructure:"error_return" validate:"required,url"`
	CancelReturn     string `mapstructure:"cancel_return" validate:"required,url"`
	DelayedPayReturn string `mapstructure:"delayed_pay_return" validate:"required,url"`
}

// DefaultConfig returns the sandbox preferences. ServerURL is left empty on
// purpose: a gateway cannot be built until the caller chooses one.
func DefaultConfig() GatewayConfig {
	return GatewayConfig{
		Secret:              "11223344556677889900",
		KeyGeneration:       "001",
		StatusParamKey:      "status",
		SuccessValue:        "success",
		CallbackVariant:     CallbackVariantDirectID,
		Action:              "NEW_PAYMENT_EXTENDED",
		Version:             ProtocolVersion,
		Currency:            "EUR",
		Charset:             "ISO-8859-1",
		CharsetHTTP:         "ISO-8859-1",
		HashVersion:         "SHA-1",
		UserLocale:          "fi_FI",
		DueDate:             "01.00.0000",
		Escrow:              "Y",
		EscrowChangeAllowed: "N",
		OKReturn:            "http://127.0.0.1/ok",
		ErrorReturn:         "http://127.0.0.1/error",
		CancelReturn:        "http://127.0.0.1/cancel",
		DelayedPayReturn:    "http://127.0.0.1/delayed",
	}
}

// Validate reports ErrMissingServer when no server is configured and
// ErrInvalidConfig for any other violated constraint.
func (c GatewayConfig) Validate() error {
	if strings.TrimSpace(c.ServerURL) == "" {
		return ErrMissingServer
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, normalizeValidationError(err))
	}
	return nil
}

func (c GatewayConfig) clone() GatewayConfig {
	if c.SellerIBAN != nil {
		iban := *c.SellerIBAN
		c.SellerIBAN = &iban
	}
	return c
}
