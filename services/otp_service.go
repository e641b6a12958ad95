// services/otp_service.go
package services

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/amyssnippet/wavvy/models"
	"github.com/amyssnippet/wavvy/utils"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type OTPService struct {
	db     *gorm.DB
	client *twilio.RestClient
	now    func() time.Time
}

func NewOTPService(db *gorm.DB) *OTPService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	var client *twilio.RestClient
	if accountSid != "" && authToken != "" {
		client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		})
	}

	return &OTPService{db: db, client: client, now: time.Now}
}

// Issue generates a fresh 4-digit code for the phone number, stores it and
// hands it to Twilio. Records are appended, the most recent one wins at
// verification. Delivery failure is logged, never returned: the code is
// still usable from the log during manual testing.
func (s *OTPService) Issue(phone string) (string, error) {
	code := utils.GenerateOTP()

	record := models.OTP{
		PhoneNumber: phone,
		Code:        code,
		CreatedAt:   s.now(),
	}
	if err := s.db.Create(&record).Error; err != nil {
		return "", err
	}

	if s.client == nil {
		log.Printf("OTP for %s is %s", phone, code)
		return code, nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	params.SetBody("Your OTP is " + code + " to verify on Wavvy. Please do not share this with anyone.")

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		log.Printf("Failed to send OTP to %s: %v", phone, err)
	}

	return code, nil
}

// Verify checks the submitted code against the most recent unverified record
// for the phone number and marks it verified on success.
func (s *OTPService) Verify(phone, code string) error {
	var record models.OTP
	err := s.db.Where("phone_number = ? AND is_verified = ?", phone, false).
		Order("created_at DESC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrOTPNotFound
		}
		return err
	}

	if err := utils.CheckOTP(record.Code, code, record.CreatedAt, s.now()); err != nil {
		return err
	}

	return s.db.Model(&record).Update("is_verified", true).Error
}

// HasRecentVerification reports whether the phone number completed OTP
// verification within the expiry window. Gates the set-password and signup
// flows.
func (s *OTPService) HasRecentVerification(phone string) (bool, error) {
	var count int64
	err := s.db.Model(&models.OTP{}).
		Where("phone_number = ? AND is_verified = ? AND created_at > ?",
			phone, true, s.now().Add(-utils.OTPExpiry)).
		Count(&count).Error
	return count > 0, err
}
