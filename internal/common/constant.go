package common

// IdentityHeaderName is the HTTP header carrying the authenticated user's
// email on outbound requests. Its absence signals an anonymous request.
const IdentityHeaderName = "X-User-Email"

// RequestIDHeaderName carries a per-request id for log correlation.
const RequestIDHeaderName = "X-Request-Id"
