package transport

import (
	"fmt"
	"strings"

	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
)

type AnnounceRequest struct {
	Size   uint32 `json:"size"`
	Chunks uint8  `json:"chunks"`
}

type BudgetRequest struct {
	Budget uint64 `json:"budget"`
}

type AmountRequest struct {
	Amount uint64 `json:"amount"`
}

type RegisterRequest struct {
	PayoutAddresses []string `json:"payout_addresses"`
}

type SlotsRequest struct {
	Slots uint16 `json:"slots"`
}

type StakeRequest struct {
	Mode   string `json:"mode"`
	Amount uint64 `json:"amount"`
}

type PurgeResponse struct {
	Kind   string `json:"kind"`
	Height uint64 `json:"height"`
	Rows   int    `json:"rows"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Class string `json:"class"`
}

// Tokens maps bearer tokens to accounts.
type Tokens map[string]model.Account

// ParseTokens reads "account:token" pairs.
func ParseTokens(pairs []string) (Tokens, error) {
	tokens := make(Tokens, len(pairs))
	for _, pair := range pairs {
		account, token, ok := strings.Cut(pair, ":")
		if !ok || account == "" || token == "" {
			return nil, fmt.Errorf("token %q: want account:token", pair)
		}
		if _, dup := tokens[token]; dup {
			return nil, fmt.Errorf("token of %s is already assigned", account)
		}
		tokens[token] = model.Account(account)
	}
	return tokens, nil
}

// Lookup returns the account of token.
func (t Tokens) Lookup(token string) (model.Account, bool) {
	if token == "" {
		return "", false
	}
	account, ok := t[token]
	return account, ok
}
