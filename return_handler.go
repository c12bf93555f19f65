package hostedpay

import (
	"context"
	"net/http"
	"net/url"

	"github.com/oapi-codegen/runtime"
	"go.uber.org/zap"
)

// Outcome names the return URL the gateway sent the buyer to.
type Outcome string

const (
	OutcomeOK         Outcome = "ok"
	OutcomeError      Outcome = "error"
	OutcomeCancel     Outcome = "cancel"
	OutcomeDelayedPay Outcome = "delayed"
)

func (o Outcome) valid() bool {
	switch o {
	case OutcomeOK, OutcomeError, OutcomeCancel, OutcomeDelayedPay:
		return true
	}
	return false
}

// Return parameters echoed by the gateway besides pmt_id.
const (
	ParamReference     = FieldReference
	ParamAmount        = FieldAmount
	ParamPaymentMethod = "pmt_paymentmethod"
)

// ReturnParams holds the typed gateway parameters of a return. Nil means the
// gateway did not send the parameter.
type ReturnParams struct {
	PaymentID     *string
	Reference     *string
	Amount        *string
	PaymentMethod *string
	Status        *string
}

// Return is handed to the [ReturnProcessor] for every gateway return.
type Return struct {
	Outcome Outcome
	// Order identifier taken from the return URL path.
	OrderID string
	Params  ReturnParams
	Result  CallbackResult
}

// ReturnProcessor owns the order state transitions that follow a return. A
// non-empty redirect URL sends the buyer there with 303 See Other.
type ReturnProcessor interface {
	ProcessReturn(ctx context.Context, ret Return) (redirectURL string, err error)
}

// ReturnProcessorFunc lifts bare functions into [ReturnProcessor].
type ReturnProcessorFunc func(ctx context.Context, ret Return) (string, error)

// ProcessReturn delegates to the wrapped function.
func (f ReturnProcessorFunc) ProcessReturn(ctx context.Context, ret Return) (string, error) {
	return f(ctx, ret)
}

// ReturnHandler serves the gateway return URLs: /{outcome}/{orderID}/ where
// outcome is ok, error, cancel or delayed. Mount it under the prefix of the
// configured return URL bases.
type ReturnHandler struct {
	gateway   *Gateway
	processor ReturnProcessor
	mux       *http.ServeMux
}

// NewReturnHandler wires the return routes to gw and processor.
func NewReturnHandler(gw *Gateway, processor ReturnProcessor, middleware ...Middleware) *ReturnHandler {
	if gw == nil {
		panic("hostedpay: gateway is required")
	}
	if processor == nil {
		panic("hostedpay: return processor is required")
	}
	h := &ReturnHandler{
		gateway:   gw,
		processor: processor,
		mux:       http.NewServeMux(),
	}
	handle := applyMiddleware(h.handleReturn, middleware...)
	h.mux.HandleFunc("GET /{outcome}/{orderID}/{$}", handle)
	h.mux.HandleFunc("POST /{outcome}/{orderID}/{$}", handle)
	return h
}

// ServeHTTP satisfies http.Handler.
func (h *ReturnHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := contextWithRequestContext(r.Context(), requestContextFromRequest(r))
	h.mux.ServeHTTP(w, r.WithContext(ctx))
}

type returnResponse struct {
	Outcome     Outcome        `json:"outcome"`
	OrderNumber string         `json:"order_number,omitempty"`
	Succeeded   bool           `json:"succeeded"`
	Reason      CallbackReason `json:"reason"`
}

func (h *ReturnHandler) handleReturn(w http.ResponseWriter, r *http.Request) {
	outcome := Outcome(r.PathValue("outcome"))
	if !outcome.valid() {
		writeJSONError(w, NewHTTPError(http.StatusNotFound, InvalidRequest, UnknownOutcome, "unknown return outcome"))
		return
	}
	if err := r.ParseForm(); err != nil {
		writeJSONError(w, NewHTTPError(http.StatusBadRequest, InvalidRequest, InvalidParameters, "return parameters could not be parsed"))
		return
	}
	params, err := bindReturnParams(r.Form, h.gateway.cfg.StatusParamKey)
	if err != nil {
		writeJSONError(w, NewHTTPError(http.StatusBadRequest, InvalidRequest, InvalidParameters, err.Error()))
		return
	}

	ret := Return{
		Outcome: outcome,
		OrderID: r.PathValue("orderID"),
		Params:  params,
		Result:  h.gateway.VerifyCallback(r.Context(), r.Form),
	}
	h.gateway.opts.logger.Info("gateway return",
		zap.String("outcome", string(outcome)),
		zap.String("order_id", ret.OrderID),
		zap.Stringp("reference", params.Reference),
		zap.String("reason", string(ret.Result.Reason)),
	)

	redirectURL, err := h.processor.ProcessReturn(r.Context(), ret)
	if err != nil {
		h.gateway.opts.logger.Error("return processing failed", zap.String("order_id", ret.OrderID), zap.Error(err))
		writeServiceError(w, err)
		return
	}
	if redirectURL != "" {
		http.Redirect(w, r, redirectURL, http.StatusSeeOther)
		return
	}
	resp := returnResponse{
		Outcome:   outcome,
		Succeeded: ret.Result.Succeeded,
		Reason:    ret.Result.Reason,
	}
	if ret.Result.Order != nil {
		resp.OrderNumber = ret.Result.Order.Number
	}
	writeJSON(w, http.StatusOK, resp)
}

func bindReturnParams(values url.Values, statusKey string) (ReturnParams, error) {
	var p ReturnParams
	for _, binding := range []struct {
		name string
		dest **string
	}{
		{ParamPaymentID, &p.PaymentID},
		{ParamReference, &p.Reference},
		{ParamAmount, &p.Amount},
		{ParamPaymentMethod, &p.PaymentMethod},
		{statusKey, &p.Status},
	} {
		if err := runtime.BindQueryParameter("form", true, false, binding.name, values, binding.dest); err != nil {
			return ReturnParams{}, err
		}
	}
	return p, nil
}
