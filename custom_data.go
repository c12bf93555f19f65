package hostedpay

import (
	"encoding/json"
	"fmt"
	"strings"

	canonicaljson "github.com/gibson042/canonicaljson-go"
)

// CustomData is the payload carried through the gateway in the custom_data
// parameter by the custom-data callback variant.
type CustomData struct {
	OrderNumber     string `json:"order_number"`
	PaymentMethodID string `json:"payment_method_id"`
	OrderToken      string `json:"order_token"`
}

// CustomDataFor builds the custom_data payload for order.
func (g *Gateway) CustomDataFor(order *Order) CustomData {
	return CustomData{
		OrderNumber:     order.Number,
		PaymentMethodID: g.cfg.PaymentMethodID,
		OrderToken:      order.Token,
	}
}

// EncodeCustomData renders d as canonical JSON so equal payloads always
// produce identical form values.
func EncodeCustomData(d CustomData) (string, error) {
	raw, err := canonicaljson.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("hostedpay: encode custom data: %w", err)
	}
	return string(raw), nil
}

// DecodeCustomData parses a custom_data value. Absent or malformed input
// yields the zero payload. Numeric members are accepted as their decimal
// text, since some integrations send payment_method_id as a number.
func DecodeCustomData(raw string) CustomData {
	if strings.TrimSpace(raw) == "" {
		return CustomData{}
	}
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var members map[string]any
	if err := dec.Decode(&members); err != nil || dec.More() {
		return CustomData{}
	}
	return CustomData{
		OrderNumber:     memberString(members["order_number"]),
		PaymentMethodID: memberString(members["payment_method_id"]),
		OrderToken:      memberString(members["order_token"]),
	}
}

func memberString(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case json.Number:
		return value.String()
	default:
		return ""
	}
}
