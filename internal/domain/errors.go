package domain

import "errors"

var (
	// ErrSessionNotFound is returned when a player acts before starting today's game.
	ErrSessionNotFound = errors.New("game session not found")
	// ErrNotAcceptingAnswers is returned for submissions outside the answering phase.
	ErrNotAcceptingAnswers = errors.New("session is not accepting answers")
	// ErrEmptyAnswer is returned for empty or whitespace-only submissions.
	ErrEmptyAnswer = errors.New("empty answer")
	// ErrGameNotFinished is returned when share text is requested mid-game.
	ErrGameNotFinished = errors.New("game not finished")
	// ErrAwardTableNotFound indicates the award dataset could not be loaded.
	ErrAwardTableNotFound = errors.New("award table not found")
)
