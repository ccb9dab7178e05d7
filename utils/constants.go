// File: utils/constants.go
package utils

// RevokedTokenPrefix is the prefix used for Redis keys of revoked token hashes.
const RevokedTokenPrefix = "revoked:"

// BookingLockPrefix is the prefix used for per-resource booking locks.
const BookingLockPrefix = "lock:booking:"

// TokenCookieName is the cookie carrying the access token for browser clients.
const TokenCookieName = "token"

// DefaultDurationText is stored for reported symptoms without a duration.
const DefaultDurationText = "Not specified"
