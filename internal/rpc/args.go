package rpc

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Args holds the named, still-encoded arguments of one operation call.
// Accessors decode a single argument each and report absence instead
// of defaulting, leaving missing-field semantics to the handler.
type Args map[string]json.RawMessage

// ParseArgs decodes a JSON object into per-argument raw values. An
// empty payload yields an empty argument set.
func ParseArgs(data []byte) (Args, error) {
	if len(data) == 0 {
		return Args{}, nil
	}
	var args Args
	if err := json.Unmarshal(data, &args); err != nil {
		return nil, fmt.Errorf("decode arguments: %w", err)
	}
	if args == nil {
		args = Args{}
	}
	return args, nil
}

// String reads a string argument. present is false when the argument
// is absent or null.
func (a Args) String(name string) (value string, present bool, err error) {
	raw, ok := a[name]
	if !ok || string(raw) == "null" {
		return "", false, nil
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", false, fmt.Errorf("argument %q: %w", name, err)
	}
	return value, true, nil
}

// Int64 reads an integer argument. Clients send ids both as JSON
// numbers and as quoted numeric strings; both forms are accepted.
func (a Args) Int64(name string) (value int64, present bool, err error) {
	raw, ok := a[name]
	if !ok || string(raw) == "null" {
		return 0, false, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		value, err = strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, false, fmt.Errorf("argument %q: %w", name, err)
		}
		return value, true, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false, fmt.Errorf("argument %q: %w", name, err)
	}
	value, err = n.Int64()
	if err != nil {
		return 0, false, fmt.Errorf("argument %q: %w", name, err)
	}
	return value, true, nil
}

// Decimal reads a decimal argument, nil when absent. Decoding goes
// through decimal.Decimal directly so monetary values round-trip
// exactly; quoted ("50.01") and bare (50.01) forms are both accepted.
func (a Args) Decimal(name string) (*decimal.Decimal, error) {
	raw, ok := a[name]
	if !ok || string(raw) == "null" {
		return nil, nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(raw); err != nil {
		return nil, fmt.Errorf("argument %q: %w", name, err)
	}
	return &d, nil
}
