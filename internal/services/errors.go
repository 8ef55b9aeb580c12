package services

import "errors"

// Domain errors surfaced by the service layer. Handlers translate these to
// HTTP status codes; everything else is a 500.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrSelfFollow   = errors.New("you cannot follow yourself")
	ErrAlreadyLiked = errors.New("you have already liked this post")
	ErrNotLiked     = errors.New("you have not liked this post")
	ErrForbidden    = errors.New("you do not have permission to perform this action")
)
