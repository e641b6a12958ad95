package utils

import (
	"errors"
	"math/rand"
	"strconv"
	"time"
)

// OTPExpiry is how long a code stays valid after issuance.
const OTPExpiry = 5 * time.Minute

var (
	ErrOTPNotFound = errors.New("no OTP found for this phone number")
	ErrOTPMismatch = errors.New("invalid OTP")
	ErrOTPExpired  = errors.New("OTP expired")
)

// GenerateOTP returns a 4-digit code in [1000, 9999].
func GenerateOTP() string {
	return strconv.Itoa(1000 + rand.Intn(9000))
}

// CheckOTP applies the verification rules against a stored code: the
// submitted code must match, and no more than OTPExpiry may have elapsed
// since issuance. Mismatch is reported before expiry.
func CheckOTP(stored, submitted string, createdAt, now time.Time) error {
	if stored != submitted {
		return ErrOTPMismatch
	}
	if createdAt.Before(now.Add(-OTPExpiry)) {
		return ErrOTPExpired
	}
	return nil
}
