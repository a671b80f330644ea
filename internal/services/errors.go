package services

import "errors"

// Общая таксономия ошибок домена; хендлеры переводят их в HTTP-статусы.
var (
	ErrNotFound      = errors.New("not found")
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
	ErrDuplicateDate = errors.New("lifestyle entry for this date already exists")
	ErrAlreadyLinked = errors.New("caregiver already linked to this patient")
	ErrInvalidCode   = errors.New("invalid verification code")
	ErrNoAnswers     = errors.New("answers are required")
	ErrNotLinked     = errors.New("caregiver is not linked to this patient")
)
