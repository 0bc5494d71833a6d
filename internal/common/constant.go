package common

// RequestIDHeaderName is the gRPC metadata key a client may use to pass its
// own request id; the server generates one when it is absent.
const RequestIDHeaderName = "x-request-id"

// CapacityExhaustedMessage is the caller-facing text for
// ErrorCapacityExhausted. Clients match on it to tell a busy code space
// apart from an unreachable server.
const CapacityExhaustedMessage = "no free code available, retry later"

// NotFoundMessage is returned for both never-issued and expired codes.
const NotFoundMessage = "Code not found or expired"
