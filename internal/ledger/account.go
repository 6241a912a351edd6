package ledger

import (
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/shopspring/decimal"
)

// Account is a single in-memory monetary account. Id and name are
// fixed at creation; only the balance and the applied-transfer set
// mutate afterwards.
//
// Concurrency model: the balance lives in an atomic cell so isolated
// reads never take a lock and never observe a torn value, while the
// compound "check funds, debit, record fingerprint" section of
// Transfer is serialized by the account's own mutex. Credits are a
// single atomic add and take no lock at all, so the destination side
// of a transfer never contends.
type Account struct {
	id   int64
	name string

	balance atomic.Pointer[decimal.Decimal]

	// mu guards the compound check-and-debit section of Transfer.
	mu sync.Mutex

	// applied holds fingerprints of transfers this account has executed
	// as the source. Entries live for the account's lifetime.
	applied sync.Map
}

// NewAccount creates an account with the given id, display name and
// opening balance.
func NewAccount(id int64, name string, sum decimal.Decimal) *Account {
	a := &Account{id: id, name: name}
	a.balance.Store(&sum)
	return a
}

// ID returns the immutable account identifier.
func (a *Account) ID() int64 { return a.id }

// Name returns the immutable display name.
func (a *Account) Name() string { return a.name }

// Balance returns the current balance. A single atomic load; safe to
// call at any time from any goroutine.
func (a *Account) Balance() decimal.Decimal {
	return *a.balance.Load()
}

// Transfer moves sum from this account to the destination. The caller
// guarantees sum is non-negative; this operation guarantees the
// balance covers it and that the same transfer intent is applied at
// most once across retries.
//
// The duplicate and balance checks run twice: once lock-free as an
// early out, then again under the source account's mutex where they
// are authoritative. Only the source is locked; the destination's
// credit is one atomic add and cannot violate any invariant.
func (a *Account) Transfer(correlationID string, to *Account, sum decimal.Decimal) Outcome {
	fp := fingerprint(correlationID, a.id, to.id, sum)

	// Advisory fast path. Both answers may be stale under concurrency
	// and are re-verified under the lock before any money moves.
	if _, dup := a.applied.Load(fp); dup {
		return OutcomeDuplicate
	}
	if a.Balance().LessThan(sum) {
		return OutcomeInsufficientFunds
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, dup := a.applied.Load(fp); dup {
		return OutcomeDuplicate
	}
	if a.Balance().LessThan(sum) {
		return OutcomeInsufficientFunds
	}

	a.add(sum.Neg())
	to.add(sum)
	a.applied.Store(fp, struct{}{})
	return OutcomeSuccess
}

// add applies delta to the balance through a compare-and-swap loop,
// keeping plain balance reads lock-free.
func (a *Account) add(delta decimal.Decimal) {
	for {
		cur := a.balance.Load()
		next := cur.Add(delta)
		if a.balance.CompareAndSwap(cur, &next) {
			return
		}
	}
}

// fingerprint derives the dedup key for one transfer intent. Identity
// is value-based over all four parts; decimal.String trims trailing
// zeros, so sums 1 and 1.00 produce the same key.
func fingerprint(correlationID string, from, to int64, sum decimal.Decimal) string {
	var b strings.Builder
	b.WriteString(correlationID)
	b.WriteByte('|')
	b.WriteString(strconv.FormatInt(from, 10))
	b.WriteByte('|')
	b.WriteString(strconv.FormatInt(to, 10))
	b.WriteByte('|')
	b.WriteString(sum.String())
	return b.String()
}
