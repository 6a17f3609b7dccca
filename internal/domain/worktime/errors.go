package worktime

import "errors"

var (
	ErrIntervalNotFound   = errors.New("work interval not found")
	ErrSessionAlreadyOpen = errors.New("an open work session already exists")
	ErrNoOpenSession      = errors.New("no open work session to clock out of")
)
