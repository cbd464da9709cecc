package relay

import (
	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/balance"
	"github.com/stripe/stripe-go/v79/balancetransaction"
	"github.com/stripe/stripe-go/v79/payout"
)

// PayoutRequest carries the fields of a payout creation call. Amount is in
// minor currency units; Method is "instant" or "standard".
type PayoutRequest struct {
	Account     string `json:"account"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Destination string `json:"destination"`
	Method      string `json:"method"`
}

// Client is the slice of the payments platform this relay forwards to.
// Every call is scoped to a connected account; retries, auth and transport
// all belong to the SDK underneath.
type Client interface {
	Balance(accountID string) (*stripe.Balance, error)
	CreatePayout(req PayoutRequest) (*stripe.Payout, error)
	ListPayouts(accountID string, limit int64) ([]*stripe.Payout, error)
	ListTransactions(accountID string, limit int64) ([]*stripe.BalanceTransaction, error)
}

type stripeClient struct{}

// NewClient configures the vendor SDK with the secret key and returns the
// production client.
func NewClient(secretKey string) Client {
	stripe.Key = secretKey
	return &stripeClient{}
}

func (c *stripeClient) Balance(accountID string) (*stripe.Balance, error) {
	params := &stripe.BalanceParams{}
	params.SetStripeAccount(accountID)
	return balance.Get(params)
}

func (c *stripeClient) CreatePayout(req PayoutRequest) (*stripe.Payout, error) {
	params := &stripe.PayoutParams{
		Amount:      stripe.Int64(req.Amount),
		Currency:    stripe.String(req.Currency),
		Destination: stripe.String(req.Destination),
		Method:      stripe.String(req.Method),
	}
	params.SetStripeAccount(req.Account)
	return payout.New(params)
}

func (c *stripeClient) ListPayouts(accountID string, limit int64) ([]*stripe.Payout, error) {
	params := &stripe.PayoutListParams{}
	params.Limit = stripe.Int64(limit)
	params.SetStripeAccount(accountID)

	var out []*stripe.Payout
	it := payout.List(params)
	for it.Next() {
		out = append(out, it.Payout())
	}
	return out, it.Err()
}

func (c *stripeClient) ListTransactions(accountID string, limit int64) ([]*stripe.BalanceTransaction, error) {
	params := &stripe.BalanceTransactionListParams{}
	params.Limit = stripe.Int64(limit)
	params.SetStripeAccount(accountID)

	var out []*stripe.BalanceTransaction
	it := balancetransaction.List(params)
	for it.Next() {
		out = append(out, it.BalanceTransaction())
	}
	return out, it.Err()
}
