package domain

import (
	"fmt"
	"strings"
)

// UnknownItemError reports liked-fragrance names that are not in the
// catalog. All offending names are collected, not just the first.
type UnknownItemError struct {
	Names []string
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("invalid fragrance names: %s", strings.Join(e.Names, ", "))
}

// UnknownCategoryError reports accord keys that are not part of the
// catalog schema.
type UnknownCategoryError struct {
	Accords []string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("invalid accord names: %s", strings.Join(e.Accords, ", "))
}

// InvalidWeightError reports accords whose preference weight falls
// outside [0,1].
type InvalidWeightError struct {
	Accords []string
}

func (e *InvalidWeightError) Error() string {
	return fmt.Sprintf("invalid weights for accords: %s. Weights must be between 0 and 1.", strings.Join(e.Accords, ", "))
}

// InvalidParameterError reports request parameters outside their
// documented bounds (top_k, diversity_factor, collection sizes).
type InvalidParameterError struct {
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return "invalid parameter: " + e.Reason
}

// SchemaViolationError reports a malformed catalog file. It is fatal at
// load time, never raised per request.
type SchemaViolationError struct {
	Reason string
}

func (e *SchemaViolationError) Error() string {
	return "catalog schema violation: " + e.Reason
}
