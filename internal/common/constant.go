package common

// AuthorizationHeaderName carries "Bearer <token>" on HTTP requests and in
// gRPC metadata.
const AuthorizationHeaderName = "authorization"

// AccessTokenHeaderName is the gRPC metadata key that carries a bare access
// token.
const AccessTokenHeaderName = "access_token"

// BearerScheme prefixes tokens in the authorization header.
const BearerScheme = "Bearer "

// TokenType is reported to clients alongside an issued token.
const TokenType = "bearer"

// SystemAuthorID is the author of every bot reply.
const SystemAuthorID = "system"
