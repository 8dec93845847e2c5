package difficulty

import "errors"

var (
	ErrInsufficientHistory = errors.New("not enough performance history")
	ErrTrainingFailed      = errors.New("predictor training failed")
	ErrAlreadyTrained      = errors.New("predictor already trained")
	ErrEmptyPlayerID       = errors.New("player id is empty")
)
