package hostedpay

import (
	"time"

	"go.uber.org/zap"
)

// Gateway builds signed payment requests for the hosted payment page and
// verifies the page's returns. It holds no mutable state and is safe for
// concurrent use.
type Gateway struct {
	cfg    GatewayConfig
	orders OrderFinder
	opts   config
}

// New validates cfg and builds a [Gateway]. orders may be nil when only the
// outbound path is used; every return is then reported as not found.
func New(cfg GatewayConfig, orders OrderFinder, opts ...Option) (*Gateway, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := config{
		logger: zap.NewNop(),
		clock:  time.Now,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
	}
	return &Gateway{
		cfg:    cfg.clone(),
		orders: orders,
		opts:   o,
	}, nil
}

// Config returns a copy of the gateway configuration.
func (g *Gateway) Config() GatewayConfig {
	return g.cfg.clone()
}

// ServerURL is the hosted payment page the outbound form posts to.
func (g *Gateway) ServerURL() string {
	return g.cfg.ServerURL
}
