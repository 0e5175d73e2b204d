package domain

import (
	"errors"
	"fmt"
)

// ErrorKind tags the three deterministic precondition failures the core can
// signal. There is no transient class: every failure is a missing or
// conflicting id.
type ErrorKind int

const (
	KindGameAlreadyExists ErrorKind = iota
	KindGameNotFound
	KindPlayerNotFound
)

// Error carries the failure kind and the offending id. The message texts are
// part of the observable contract and must not change.
type Error struct {
	Kind ErrorKind
	ID   int
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindGameAlreadyExists:
		return fmt.Sprintf("Game %d already exists", e.ID)
	case KindGameNotFound:
		return fmt.Sprintf("Game %d not found", e.ID)
	case KindPlayerNotFound:
		return fmt.Sprintf("Player %d not found", e.ID)
	default:
		return fmt.Sprintf("unknown error kind %d for id %d", int(e.Kind), e.ID)
	}
}

// ErrGameAlreadyExists signals a create conflict for the given game id.
func ErrGameAlreadyExists(gameID int) error {
	return &Error{Kind: KindGameAlreadyExists, ID: gameID}
}

// ErrGameNotFound signals a missing game on any game-scoped operation.
func ErrGameNotFound(gameID int) error {
	return &Error{Kind: KindGameNotFound, ID: gameID}
}

// ErrPlayerNotFound signals a missing player on any player-scoped operation.
func ErrPlayerNotFound(playerID int) error {
	return &Error{Kind: KindPlayerNotFound, ID: playerID}
}

func isKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// IsGameAlreadyExists reports whether err is a game-exists conflict.
func IsGameAlreadyExists(err error) bool { return isKind(err, KindGameAlreadyExists) }

// IsGameNotFound reports whether err is a missing-game failure.
func IsGameNotFound(err error) bool { return isKind(err, KindGameNotFound) }

// IsPlayerNotFound reports whether err is a missing-player failure.
func IsPlayerNotFound(err error) bool { return isKind(err, KindPlayerNotFound) }
