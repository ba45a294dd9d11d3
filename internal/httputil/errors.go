package httputil

import "errors"

// Binding errors shared by all v1 handlers. Wording is part of the API
// surface, goal and wallet clients display these verbatim.
var (
	ErrInvalidBody      = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
	ErrInvalidUUID      = errors.New("the specified resource ID is not a valid UUID")
)
