package hostedpay

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/url"

	"go.uber.org/zap"
)

// ParamPaymentID is the return parameter carrying the order number in the
// direct-id variant.
const ParamPaymentID = FieldID

// OrderFinder looks orders up by their human-readable number. Implementations
// return [ErrOrderNotFound] (or a nil order) when nothing matches.
type OrderFinder interface {
	FindOrderByNumber(ctx context.Context, number string) (*Order, error)
}

// OrderFinderFunc lifts bare functions into [OrderFinder].
type OrderFinderFunc func(ctx context.Context, number string) (*Order, error)

// FindOrderByNumber delegates to the wrapped function.
func (f OrderFinderFunc) FindOrderByNumber(ctx context.Context, number string) (*Order, error) {
	return f(ctx, number)
}

// CallbackReason explains a [CallbackResult].
type CallbackReason string

const (
	CallbackSucceeded      CallbackReason = "succeeded"
	CallbackStatusMismatch CallbackReason = "status_mismatch"
	CallbackOrderNotFound  CallbackReason = "order_not_found"
	CallbackTokenMismatch  CallbackReason = "token_mismatch"
	CallbackLookupFailed   CallbackReason = "lookup_failed"
)

// CallbackResult is the outcome of verifying a gateway return. Order is nil
// whenever the return could not be tied to an order; Succeeded is then false.
type CallbackResult struct {
	Order     *Order
	Succeeded bool
	Reason    CallbackReason
	// Err is the lookup failure behind CallbackLookupFailed.
	Err error
}

// VerifyCallback ties the return parameters to their order and checks the
// configured status parameter against the success value. Unknown orders,
// token mismatches and failed statuses are results, never errors.
//
// The gateway does not sign its returns, so nothing here is cryptographically
// verified.
func (g *Gateway) VerifyCallback(ctx context.Context, params url.Values) CallbackResult {
	number, token, checkToken := g.orderReference(params)
	logger := g.opts.logger.With(
		zap.String("callback_variant", string(g.cfg.CallbackVariant)),
		zap.String("order_number", number),
	)

	if number == "" || g.orders == nil {
		logger.Warn("gateway return without a known order")
		return CallbackResult{Reason: CallbackOrderNotFound}
	}
	order, err := g.orders.FindOrderByNumber(ctx, number)
	switch {
	case errors.Is(err, ErrOrderNotFound), err == nil && order == nil:
		logger.Warn("gateway return for unknown order")
		return CallbackResult{Reason: CallbackOrderNotFound}
	case err != nil:
		logger.Error("order lookup failed", zap.Error(err))
		return CallbackResult{Reason: CallbackLookupFailed, Err: err}
	}
	if checkToken && subtle.ConstantTimeCompare([]byte(order.Token), []byte(token)) != 1 {
		logger.Warn("gateway return token does not match order")
		return CallbackResult{Reason: CallbackTokenMismatch}
	}

	status := params.Get(g.cfg.StatusParamKey)
	if status != g.cfg.SuccessValue {
		logger.Info("gateway return reports failure", zap.String("status", status))
		return CallbackResult{Order: order, Reason: CallbackStatusMismatch}
	}
	logger.Info("gateway return reports success")
	return CallbackResult{Order: order, Succeeded: true, Reason: CallbackSucceeded}
}

func (g *Gateway) orderReference(params url.Values) (number, token string, checkToken bool) {
	if g.cfg.CallbackVariant == CallbackVariantCustomData {
		data := DecodeCustomData(params.Get(FieldCustomData))
		return data.OrderNumber, data.OrderToken, true
	}
	return params.Get(ParamPaymentID), "", false
}
