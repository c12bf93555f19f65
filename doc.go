// Package hostedpay signs checkout orders for a hosted payment page and
// verifies the page's returns.
//
// # Outbound
//
// Build a [Gateway] with [New] from a [GatewayConfig] (see [DefaultConfig] and
// [LoadConfig]) and call [Gateway.BuildForm] with an [Order] snapshot. The
// resulting [Form] holds the pmt_* hidden fields, including the pmt_hash
// digest, to post from the buyer's browser to the configured server.
//
// The digest is a SHA-1 over every present field value in the protocol's
// fixed order, each followed by "&", and finally the shared secret. Text
// fields pass through [Normalize] and amounts through [FormatAmount] first,
// so any change to ordering or formatting changes the digest and the gateway
// rejects the payment.
//
// # Inbound
//
// [Gateway.VerifyCallback] ties the return parameters back to an order via
// an [OrderFinder] and compares the configured status parameter with the
// success value. [NewReturnHandler] exposes it over net/http and leaves the
// order state transitions to a [ReturnProcessor].
package hostedpay
