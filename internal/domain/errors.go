package domain

import "errors"

var (
	// ErrValidation signals a malformed or logically inconsistent search request.
	ErrValidation = errors.New("invalid search request")
	// ErrInvariant signals an internal invariant breach in the core pipeline.
	ErrInvariant = errors.New("internal invariant violated")
	// ErrEngineBadRequest signals that the engine rejected the constructed query.
	ErrEngineBadRequest = errors.New("search engine rejected the query")
	// ErrEngineConnection signals a connection-level engine failure.
	ErrEngineConnection = errors.New("search engine connection failed")
	// ErrEngineTransport signals a transport-level engine failure.
	ErrEngineTransport = errors.New("search engine transport failed")
	// ErrMissingResponseField signals that the engine response lacked an expected shape.
	ErrMissingResponseField = errors.New("required field missing in engine response")
)
