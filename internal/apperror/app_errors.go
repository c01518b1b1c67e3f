package apperror

import "errors"

var (
	ErrGameFinished    = errors.New("game is already finished")
	ErrNotYourTurn     = errors.New("it's not your turn")
	ErrNotComputerTurn = errors.New("it's not the computer's turn")
	ErrUnknownStorage  = errors.New("unknown storage type")
)
