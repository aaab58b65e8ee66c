package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exist")
	// ErrForbidden will throw if the action violates a policy (e.g. feeling your own article)
	ErrForbidden = errors.New("you are not allowed to do this action")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrCacheMiss will throw if the requested key is absent from cache
	ErrCacheMiss = errors.New("cache miss")
	// ErrUpstreamUnavailable will throw if a backing store read failed;
	// the home aggregation swallows it per category
	ErrUpstreamUnavailable = errors.New("upstream store unavailable")
)
