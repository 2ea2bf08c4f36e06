// Package client is the caller side of the AuthenticationService.
//
// # Overview
//
// Client is the transport-agnostic contract used by the CLI; GRPCClient is
// the gRPC implementation. It tags every call with an x-request-id, applies
// a per-call timeout and turns the in-band domain outcomes of the protocol
// back into errors.
//
// # Error Handling
//
// Domain outcomes are returned as the shared sentinels
// common.ErrUsernameTaken and common.ErrInvalidCredentials. Transport faults
// map to ErrInvalidRequest and ErrUnavailable; a response that carries
// neither a result nor a known error yields ErrUnexpectedResponse. Match all
// of them with errors.Is.
package client
