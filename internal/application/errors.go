package application

import "errors"

// Service-level sentinel errors. Handlers map these to the wire contract:
// validation and conflict errors answer 400, missing resources answer 400
// on profile routes and 404 on post routes, authorization failures 401.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrNotPostAuthor      = errors.New("user is not the post author")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrNotCommentAuthor   = errors.New("user is not the comment author")
	ErrAlreadyLiked       = errors.New("post already liked")
	ErrNotLiked           = errors.New("post not liked")
)
