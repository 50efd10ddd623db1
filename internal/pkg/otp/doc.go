// Package otp generates one-time numeric codes for password reset flows.
//
// Codes are short-lived secrets delivered out of band (e.g. by SMS). The
// generator only produces the code; persistence and expiry are handled by the
// caller.
package otp
