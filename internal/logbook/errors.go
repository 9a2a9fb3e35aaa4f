package logbook

import "errors"

// ErrEmptyMessage is returned when a message is blank after trimming; nothing is written.
var ErrEmptyMessage = errors.New("empty message")

// ErrInvalidDays indicates a history window smaller than one day.
var ErrInvalidDays = errors.New("days must be at least 1")

// ErrEmptyKeyword is returned when a search is attempted with a blank keyword.
var ErrEmptyKeyword = errors.New("search keyword is required")
