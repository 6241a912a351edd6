package ledger

// Outcome is the closed set of transfer results. Outcomes are ordinary
// values, not errors: every call into the account layer completes with
// one of them, and validation failures are expected, caller-correctable
// conditions. The strings are part of the wire contract.
type Outcome string

const (
	// OutcomeSuccess means the debit/credit pair was applied.
	OutcomeSuccess Outcome = "Success"
	// OutcomeInsufficientFunds means the source balance did not cover the sum.
	OutcomeInsufficientFunds Outcome = "Insufficient funds"
	// OutcomeDuplicate means this exact transfer intent was already applied.
	OutcomeDuplicate Outcome = "Duplicate operation was rejected"
	// OutcomeSumMissing rejects a transfer request without a sum.
	OutcomeSumMissing Outcome = "Sum not specified"
	// OutcomeCorrelationMissing rejects a transfer request without a correlation id.
	OutcomeCorrelationMissing Outcome = "CorrelationId not specified"
	// OutcomeNegativeSum rejects a transfer of a strictly negative sum.
	OutcomeNegativeSum Outcome = "Negative sum is not allowed"
)
