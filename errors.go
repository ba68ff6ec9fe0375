package stockfolio

import "errors"

// Validation errors indicate that an operation was called with arguments
// that violate its contract.
var (
	// ErrInvalidQuantity indicates a buy or sell with a non-positive share count.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")

	// ErrInvalidArgument indicates a malformed date, a non-positive moving
	// average window, or another argument outside its domain.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Business rule errors indicate that an operation cannot be completed
// against the current state of a portfolio.
var (
	// ErrInsufficientHoldings indicates a sale exceeding the quantity held
	// for the ticker as of the sale date.
	ErrInsufficientHoldings = errors.New("insufficient holdings for sale")

	// ErrSealedPortfolio indicates a mutation attempted on a fixed portfolio.
	ErrSealedPortfolio = errors.New("portfolio is fixed and cannot be mutated")
)

// Lookup and collaborator errors.
var (
	// ErrNotFound indicates an unknown ticker, a price unavailable on the
	// requested date after the cache has been refreshed, or a missing
	// portfolio or strategy file.
	ErrNotFound = errors.New("not found")

	// ErrExternalService indicates the price provider was unreachable or
	// returned a response that could not be parsed.
	ErrExternalService = errors.New("external service error")
)
