package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/amrhendawy/vetdesk/database"
	"github.com/amrhendawy/vetdesk/models"
	"github.com/amrhendawy/vetdesk/notifications"
)

func SendAppointmentReminders() {
	log.Println("Running job: SendAppointmentReminders...")

	now := time.Now()
	lowerBound := now.Add(60 * time.Minute)
	upperBound := now.Add(65 * time.Minute)

	var upcoming []models.Appointment
	err := database.DB.
		Preload("Pet").
		Preload("Client").
		Where("status = ? AND scheduled_at BETWEEN ? AND ?", "waiting", lowerBound, upperBound).
		Find(&upcoming).Error
	if err != nil {
		log.Printf("Error checking for upcoming appointments: %v", err)
		return
	}

	if len(upcoming) == 0 {
		return
	}

	for _, appointment := range upcoming {
		var count int64
		database.DB.Model(&models.Notification{}).
			Where("appointment_id = ? AND kind = ?", appointment.ID, "appointment_reminder").
			Count(&count)
		if count > 0 {
			continue
		}

		message := fmt.Sprintf(
			"Reminder: %s has an appointment at the clinic at %s. See you soon!",
			appointment.Pet.Name,
			appointment.ScheduledAt.Format(time.Kitchen),
		)

		notification := models.Notification{
			AppointmentID: &appointment.ID,
			ClientID:      appointment.ClientID,
			Kind:          "appointment_reminder",
			Phone:         appointment.Client.Phone,
			Message:       message,
			Status:        "pending",
		}
		if err := database.DB.Create(&notification).Error; err != nil {
			log.Printf("Error recording reminder for appointment %s: %v", appointment.ID, err)
			continue
		}

		if err := notifications.SendSMS(notification.Phone, notification.Message); err != nil {
			notification.Status = "failed"
		} else {
			sentAt := time.Now()
			notification.Status = "sent"
			notification.SentAt = &sentAt
		}
		database.DB.Save(&notification)
	}
}
