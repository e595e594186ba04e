package domain

import "errors"

// CodeAlphabet is used for every user-facing code. It leaves out 0, O, 1 and I
// so codes survive being read aloud or copied by hand.
const CodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	PaymentCodeLength   = 4
	ReferenceCodeLength = 8
)

// ErrCodeTaken is returned by stores when inserting a code that is already
// held by a live record.
var ErrCodeTaken = errors.New("code already taken")

// ErrAlreadySettled is returned by stores when a second settlement is
// recorded for the same checkout.
var ErrAlreadySettled = errors.New("checkout already settled")
