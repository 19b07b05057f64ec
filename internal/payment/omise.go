package payment

import (
	"context"
	"errors"
	"math"

	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
)

// Fixed checkout parameters; the API does not let callers pick either.
const (
	Currency   = "thb"
	SourceType = "promptpay"
)

// Provider creates charge intents against Omise. The returned source id
// is the opaque client secret the frontend completes the payment with.
type Provider struct {
	client *omise.Client
}

func NewProvider(publicKey, secretKey string) (*Provider, error) {
	c, err := omise.NewClient(publicKey, secretKey)
	if err != nil {
		return nil, err
	}
	c.SetDebug(false)
	return &Provider{client: c}, nil
}

// MinorUnits converts a price in major units to the provider's minor
// units (satang), rounding to the nearest unit.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

func (p *Provider) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := MinorUnits(price)
	if amount <= 0 {
		return "", errors.New("price must be positive")
	}
	src := &omise.Source{}
	req := &operations.CreateSource{
		Type:     SourceType,
		Amount:   amount,
		Currency: Currency,
	}
	if err := p.client.Do(src, req); err != nil {
		return "", err
	}
	return src.ID, nil
}
