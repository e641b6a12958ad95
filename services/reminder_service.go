// services/reminder_service.go
package services

import (
	"log"
	"os"
	"time"

	"github.com/amyssnippet/wavvy/models"
	"github.com/amyssnippet/wavvy/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", func() {
		s.SendDailyReminders()
		s.PurgeStaleOTPs()
	})

	c.Start()
	log.Println("Reminder scheduler started")
}

func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	var businesses []models.Business
	if err := s.db.Find(&businesses).Error; err != nil {
		log.Printf("Failed to fetch businesses: %v", err)
		return
	}

	for _, business := range businesses {
		s.ProcessBusinessReminders(business)
	}

	log.Println("Daily reminder processing completed")
}

// ProcessBusinessReminders texts every client with a Scheduled appointment
// tomorrow at the given salon.
func (s *ReminderService) ProcessBusinessReminders(business models.Business) {
	tomorrow := utils.BeginningOfDay(time.Now().AddDate(0, 0, 1))

	var appointments []models.Appointment
	err := s.db.Preload("Client").
		Where("business_id = ? AND status = ? AND appointment_date = ?",
			business.ID, models.StatusScheduled, tomorrow).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Business %s: Failed to get appointments: %v", business.ID, err)
		return
	}

	for _, appointment := range appointments {
		s.sendReminder(business, appointment)
	}
}

func (s *ReminderService) sendReminder(business models.Business, appointment models.Appointment) {
	message := "Hi " + appointment.Client.ClientName + ", this is a reminder for your appointment at " +
		business.SalonName + " tomorrow at " + appointment.AppointmentTime + "."

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(appointment.Client.ClientPhone)
	params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", appointment.Client.ClientPhone, err)
		return
	}
	if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", appointment.Client.ClientPhone, *resp.Sid)
	} else {
		log.Printf("Reminder sent to %s, but no SID returned", appointment.Client.ClientPhone)
	}
}

// PurgeStaleOTPs removes unverified codes older than a day. Expiry is still
// enforced at verification time, this only keeps the table small.
func (s *ReminderService) PurgeStaleOTPs() {
	cutoff := time.Now().AddDate(0, 0, -1)
	result := s.db.Where("is_verified = ? AND created_at < ?", false, cutoff).
		Delete(&models.OTP{})
	if result.Error != nil {
		log.Printf("Failed to purge stale OTPs: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Purged %d stale OTP records", result.RowsAffected)
	}
}
