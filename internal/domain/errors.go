package domain

import "errors"

var (
	ErrBeadOutOfRange = errors.New("bead count out of range: heaven must be 0-2, earth 0-5")
	ErrRodIndex       = errors.New("rod index outside board")
	ErrBoardSize      = errors.New("board needs at least one rod")
	ErrNoChallenge    = errors.New("no active challenge")
	ErrUnknownType    = errors.New("unknown problem type")
)
