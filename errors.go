package emograd

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidConfig      = goerr.New("invalid configuration")
	ErrUnknownPersonality = goerr.New("unknown personality")
)
