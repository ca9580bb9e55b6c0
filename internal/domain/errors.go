package domain

import "errors"

var (
	// ErrValidation rejects malformed or missing user/teacher input. Call
	// sites wrap it with the offending field; no state changes on return.
	ErrValidation = errors.New("validation failed")
	// ErrNoQuestions blocks registration when the repository yields no content.
	ErrNoQuestions = errors.New("no questions available")
	// ErrInvalidDuration flags a timer started with a non-positive duration.
	ErrInvalidDuration = errors.New("invalid countdown duration")
	// ErrNotRegistering is returned when Register is called outside the
	// Registering phase.
	ErrNotRegistering = errors.New("session is not accepting registration")
	// ErrNotPlaying is returned when an answer arrives outside Playing.
	ErrNotPlaying = errors.New("session is not accepting answers")
	// ErrAnswerLocked is returned when the active question has already been
	// consumed by a submission or by timer expiry.
	ErrAnswerLocked = errors.New("answer already locked for this question")
	// ErrNotFinished is returned when Restart is called before Won or Lost.
	ErrNotFinished = errors.New("session is not finished")
)
