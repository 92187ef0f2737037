package jncep

import "errors"

// Sentinel errors classified from generator output. Callers should test with
// [errors.Is]; the returned errors wrap these values together with the last
// relevant output line for context.
var (
	// ErrPaymentRequired means the account does not own the requested volume.
	// The download flow may try to redeem a coin and run the generator again.
	ErrPaymentRequired = errors.New("volume not owned by the account")

	// ErrInvalidCredentials means the generator could not sign in with the
	// supplied email and password.
	ErrInvalidCredentials = errors.New("generator sign-in rejected")

	// ErrInvalidNovelURL means the generator rejected the novel URL.
	ErrInvalidNovelURL = errors.New("generator rejected the novel URL")

	// ErrGeneration covers every other generator failure, including timeouts
	// and a missing binary.
	ErrGeneration = errors.New("generation failed")
)
