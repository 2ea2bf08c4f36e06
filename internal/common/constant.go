package common

// RequestIDHeaderName is the gRPC metadata key carrying the request
// correlation id in both directions.
const RequestIDHeaderName = "x-request-id"

// PlaceholderToken is the opaque session token handed out until a signing
// issuer is configured.
const PlaceholderToken = "some-nice-token-that-should-eventually-be-a-json-webtoken"
