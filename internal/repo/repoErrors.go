package repo

import "errors"

var (
	ErrPollNotFound   = errors.New("poll not found")
	ErrOptionNotFound = errors.New("option not found")
	ErrAlreadyVoted   = errors.New("user has already voted in this poll")
	ErrPollClosed     = errors.New("poll is not active")
)
