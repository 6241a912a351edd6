package ledger

import (
	"context"
	"log/slog"
	"math"
	"math/rand"

	"github.com/shopspring/decimal"
)

// minAccountID keeps generated ids clear of small hand-assigned ones.
const minAccountID = 1_000_000

// Service is the use-case layer over the account store: it validates
// requests, resolves accounts and delegates the actual movement of
// funds to Account.Transfer. It holds no locks of its own.
type Service struct {
	store  *AccountStore
	logger *slog.Logger
}

// NewService builds the ledger service.
func NewService(store *AccountStore, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// CreateAccount registers a new account. Name and opening sum are both
// required; a fresh random id is drawn since callers do not supply one.
func (s *Service) CreateAccount(ctx context.Context, name string, sum *decimal.Decimal) (*Account, error) {
	if name == "" {
		return nil, ErrNameMissing
	}
	if sum == nil {
		return nil, ErrSumMissing
	}

	account := NewAccount(newAccountID(), name, *sum)
	s.store.Put(account)

	s.logger.InfoContext(ctx, "account created",
		slog.Int64("account_id", account.ID()),
		slog.String("name", account.Name()))
	return account, nil
}

// GetBalance resolves the account and returns its balance snapshot.
func (s *Service) GetBalance(_ context.Context, id int64) (decimal.Decimal, error) {
	account, err := s.store.GetStrict(id)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return account.Balance(), nil
}

// Transfer validates the request and delegates to the source account.
// Missing or negative fields come back as outcomes before any account
// is touched; an unknown account id is a hard error, never an outcome.
func (s *Service) Transfer(ctx context.Context, correlationID string, fromID, toID int64, sum *decimal.Decimal) (Outcome, error) {
	if sum == nil {
		return OutcomeSumMissing, nil
	}
	if correlationID == "" {
		return OutcomeCorrelationMissing, nil
	}
	if sum.Sign() < 0 {
		return OutcomeNegativeSum, nil
	}

	from, err := s.store.GetStrict(fromID)
	if err != nil {
		return "", err
	}
	to, err := s.store.GetStrict(toID)
	if err != nil {
		return "", err
	}

	outcome := from.Transfer(correlationID, to, *sum)

	s.logger.InfoContext(ctx, "transfer processed",
		slog.String("correlation_id", correlationID),
		slog.Int64("from_id", fromID),
		slog.Int64("to_id", toID),
		slog.String("sum", sum.String()),
		slog.String("outcome", string(outcome)))
	return outcome, nil
}

func newAccountID() int64 {
	return minAccountID + rand.Int63n(math.MaxInt64-minAccountID)
}
