package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/paymesh/paymesh/internal/logging"
)

func newTestService() *Service {
	return NewService(NewAccountStore(), logging.Discard())
}

func decp(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestServiceCreateAccountAndBalance(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	account, err := svc.CreateAccount(ctx, "alice", decp("10"))
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	if account.Name() != "alice" {
		t.Fatalf("unexpected name %q", account.Name())
	}
	if account.ID() < minAccountID {
		t.Fatalf("generated id %d below minimum", account.ID())
	}

	balance, err := svc.GetBalance(ctx, account.ID())
	if err != nil {
		t.Fatalf("get balance: %v", err)
	}
	if !balance.Equal(dec("10")) {
		t.Fatalf("expected balance 10, got %s", balance)
	}
}

func TestServiceCreateAccountValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.CreateAccount(ctx, "", decp("10")); !errors.Is(err, ErrNameMissing) {
		t.Fatalf("expected ErrNameMissing, got %v", err)
	}
	if _, err := svc.CreateAccount(ctx, "bob", nil); !errors.Is(err, ErrSumMissing) {
		t.Fatalf("expected ErrSumMissing, got %v", err)
	}
}

func TestServiceGetBalanceUnknownAccount(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetBalance(context.Background(), 42)
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestServiceTransferValidationOutcomes(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	a, _ := svc.CreateAccount(ctx, "a", decp("10"))
	b, _ := svc.CreateAccount(ctx, "b", decp("0"))

	cases := []struct {
		name          string
		correlationID string
		sum           *decimal.Decimal
		want          Outcome
	}{
		{"missing sum", "corr-1", nil, OutcomeSumMissing},
		{"missing correlation id", "", decp("1"), OutcomeCorrelationMissing},
		{"negative sum", "corr-1", decp("-5"), OutcomeNegativeSum},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			outcome, err := svc.Transfer(ctx, tc.correlationID, a.ID(), b.ID(), tc.sum)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if outcome != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, outcome)
			}
		})
	}

	// Validation failures never touch balances.
	if !a.Balance().Equal(dec("10")) || !b.Balance().IsZero() {
		t.Fatalf("balances changed by rejected requests: a=%s b=%s", a.Balance(), b.Balance())
	}
}

func TestServiceTransferUnknownAccount(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	a, _ := svc.CreateAccount(ctx, "a", decp("10"))

	outcome, err := svc.Transfer(ctx, "corr-1", a.ID(), 7, decp("1"))
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
	if outcome != "" {
		t.Fatalf("expected no outcome, got %q", outcome)
	}

	// Missing source id fails the same way, before any movement.
	if _, err := svc.Transfer(ctx, "corr-1", 0, a.ID(), decp("1")); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestServiceTransferScenario(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	a, _ := svc.CreateAccount(ctx, "a", decp("100"))
	b, _ := svc.CreateAccount(ctx, "b", decp("0"))

	outcome, err := svc.Transfer(ctx, "c1", a.ID(), b.ID(), decp("50"))
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if outcome != OutcomeSuccess {
		t.Fatalf("expected success, got %q", outcome)
	}

	if balance, _ := svc.GetBalance(ctx, a.ID()); !balance.Equal(dec("50")) {
		t.Fatalf("expected a=50, got %s", balance)
	}
	if balance, _ := svc.GetBalance(ctx, b.ID()); !balance.Equal(dec("50")) {
		t.Fatalf("expected b=50, got %s", balance)
	}

	outcome, err = svc.Transfer(ctx, "c1", a.ID(), b.ID(), decp("50"))
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if outcome != OutcomeDuplicate {
		t.Fatalf("expected duplicate rejection, got %q", outcome)
	}

	if balance, _ := svc.GetBalance(ctx, a.ID()); !balance.Equal(dec("50")) {
		t.Fatalf("replay changed balance a: %s", balance)
	}
	if balance, _ := svc.GetBalance(ctx, b.ID()); !balance.Equal(dec("50")) {
		t.Fatalf("replay changed balance b: %s", balance)
	}
}

func TestAccountStorePutAndGetStrict(t *testing.T) {
	store := NewAccountStore()
	account := NewAccount(7, "stored", dec("1"))

	store.Put(account)

	got, err := store.GetStrict(7)
	if err != nil {
		t.Fatalf("get strict: %v", err)
	}
	if got != account {
		t.Fatalf("expected same account instance")
	}

	if _, err := store.GetStrict(8); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
