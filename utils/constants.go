package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// OTPTTL is how long an issued login OTP stays valid.
const OTPTTL = 5 * time.Minute

// GSTVerificationPrefix keys cached GST verification results per employer.
const GSTVerificationPrefix = "gstVerify:"

// GSTVerificationTTL bounds how long a verified GSTIN can be used to register.
const GSTVerificationTTL = 30 * time.Minute
