package special

import "errors"

// ErrDomain is returned when an argument lies outside a function's contract
// (n < 1, negative order, negative or NaN evaluation point).
var ErrDomain = errors.New("special: argument outside domain")
