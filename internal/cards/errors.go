package cards

import "errors"

var (
	// ErrMalformedCardToken indicates a textual card token that does not
	// parse as "<rank><suit>".
	ErrMalformedCardToken = errors.New("malformed card token")

	// ErrCardAlreadyDealt indicates a card was claimed twice, either by
	// two "given"/"dead" reservations or by drawing after removal.
	ErrCardAlreadyDealt = errors.New("card already dealt")

	// ErrDeckExhausted indicates a draw was requested with no undealt
	// cards remaining.
	ErrDeckExhausted = errors.New("deck exhausted")
)
