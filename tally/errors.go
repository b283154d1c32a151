// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import "errors"

// Validation failures from SubmitBallot, checked in this order
var (
	ErrMissingFields = errors.New("voter name, first choice and second choice are required")
	ErrUnknownVoter  = errors.New("voter is not on the roster")
	ErrAlreadyVoted  = errors.New("voter has already voted")
)
