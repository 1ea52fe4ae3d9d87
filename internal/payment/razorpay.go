package payment

import (
	"math"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/gleamhub/carwash-booking/internal/httperr"
)

// Gateway wraps the Razorpay client. Integration is deliberately narrow:
// remote order creation before checkout and signature verification of the
// payment callback.
type Gateway struct {
	client    *razorpay.Client
	keyID     string
	keySecret string
}

func NewGateway(keyID, keySecret string) *Gateway {
	if keyID == "" || keySecret == "" {
		return &Gateway{}
	}
	return &Gateway{
		client:    razorpay.NewClient(keyID, keySecret),
		keyID:     keyID,
		keySecret: keySecret,
	}
}

func (g *Gateway) Enabled() bool {
	return g.client != nil
}

// KeyID is the public half of the credentials; the checkout widget needs it.
func (g *Gateway) KeyID() string {
	return g.keyID
}

// CreateOrder registers an order with Razorpay and returns the raw gateway
// response (the client needs order id, amount and currency for checkout).
// Amount is in rupees and converted to paise here.
func (g *Gateway) CreateOrder(amount float64, receipt string) (map[string]interface{}, error) {
	if !g.Enabled() {
		return nil, httperr.ErrBusiness("payment_gateway_not_configured")
	}

	data := map[string]interface{}{
		"amount":   int64(math.Round(amount * 100)),
		"currency": "INR",
		"receipt":  receipt,
	}

	return g.client.Order.Create(data, nil)
}

// VerifyCallback checks the callback signature against this gateway's secret.
func (g *Gateway) VerifyCallback(gatewayOrderID, gatewayPaymentID, signature string) bool {
	if !g.Enabled() {
		return false
	}
	return VerifySignature(g.keySecret, gatewayOrderID, gatewayPaymentID, signature)
}
