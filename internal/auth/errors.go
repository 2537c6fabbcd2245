package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("the email address or the password is wrong")
	ErrUnauthorized       = errors.New("you need to be logged in, send your token in the Authorization header as 'Bearer <token>'")
	ErrTokenInvalid       = errors.New("the token is invalid or expired")
	ErrPasswordTooShort   = errors.New("the password must be at least 8 characters long")
)
