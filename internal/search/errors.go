package search

import "errors"

// ErrNoAttackableSolution is returned by the resilient search when no
// candidate ends with an arithmetic move the adversary could attack.
var ErrNoAttackableSolution = errors.New("no attackable solution")
