package core

import "errors"

var (
	ErrUnknownSpecies = errors.New("unknown enemy species")
	ErrInvalidLevel   = errors.New("invalid level number")
	ErrNoSpawn        = errors.New("map needs exactly one spawn marker")
	ErrBadSymbol      = errors.New("bad map symbol")
	ErrBadMap         = errors.New("bad map size")
)
