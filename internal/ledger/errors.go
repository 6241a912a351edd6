package ledger

import "errors"

var (
	// ErrAccountNotFound occurs when an account id does not resolve.
	// Unlike the Outcome strings this is a hard failure: it signals a
	// client or programming error, not a recoverable ledger condition.
	ErrAccountNotFound = errors.New("account not found")

	// ErrNameMissing rejects account creation without a display name.
	ErrNameMissing = errors.New("name not specified")

	// ErrSumMissing rejects account creation without an opening balance.
	ErrSumMissing = errors.New("sum not specified")
)
