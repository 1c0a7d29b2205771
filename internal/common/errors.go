// Package common defines sentinel errors shared by the luggageshare client
// packages. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Session errors.
	ErrNotLoggedIn = errors.New("not logged in")

	// Lookup errors.
	ErrUserNotFound   = errors.New("user not found")
	ErrPostNotFound   = errors.New("post not found")
	ErrDealNotFound   = errors.New("deal not found")
	ErrNoMatchingPost = errors.New("no matching post of your own")

	// Lifecycle errors.
	ErrNotProposed    = errors.New("deal is not in Proposed state")
	ErrNotDealCarrier = errors.New("only the deal carrier can do this")
	ErrNotDealParty   = errors.New("only a party of the deal can do this")

	// Validation errors for entity constructors.
	ErrValidation = errors.New("validation error")
)
