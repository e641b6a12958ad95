package utils

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTPRange(t *testing.T) {
	for i := 0; i < 500; i++ {
		code := GenerateOTP()
		require.Len(t, code, 4)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1000)
		assert.LessOrEqual(t, n, 9999)
	}
}

func TestCheckOTPAcceptsMatchWithinWindow(t *testing.T) {
	issued := time.Now()

	err := CheckOTP("4821", "4821", issued, issued.Add(4*time.Minute))
	assert.NoError(t, err)
}

func TestCheckOTPExpired(t *testing.T) {
	issued := time.Now()

	err := CheckOTP("4821", "4821", issued, issued.Add(6*time.Minute))
	assert.ErrorIs(t, err, ErrOTPExpired)
}

func TestCheckOTPBoundary(t *testing.T) {
	issued := time.Now()

	// Exactly five minutes is still inside the window
	err := CheckOTP("4821", "4821", issued, issued.Add(OTPExpiry))
	assert.NoError(t, err)
}

func TestCheckOTPMismatch(t *testing.T) {
	issued := time.Now()

	err := CheckOTP("4821", "9999", issued, issued.Add(time.Minute))
	assert.ErrorIs(t, err, ErrOTPMismatch)
}

func TestCheckOTPMismatchReportedBeforeExpiry(t *testing.T) {
	issued := time.Now()

	// Wrong code on an expired record still reads as a mismatch
	err := CheckOTP("4821", "9999", issued, issued.Add(10*time.Minute))
	assert.ErrorIs(t, err, ErrOTPMismatch)
}
