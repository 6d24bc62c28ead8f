package spec

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrSkillNotFound   = errors.New("skill not found")
	ErrSessionNotFound = errors.New("session not found")
)
