package common

// AuthorizationHeaderName is the gRPC metadata key used to carry the bearer
// token on incoming requests.
const AuthorizationHeaderName = "authorization"

// BearerPrefix precedes the token value in the authorization metadata entry.
const BearerPrefix = "Bearer "
