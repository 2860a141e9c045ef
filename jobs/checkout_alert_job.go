package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/amrhendawy/vetdesk/database"
	"github.com/amrhendawy/vetdesk/models"
	"github.com/amrhendawy/vetdesk/notifications"
)

// NotifyCheckoutsDue alerts owners of sessions that have entered the red
// band (checkout due within a day or overdue). Each session is alerted at
// most once: the persisted notification row is the dedup record.
func NotifyCheckoutsDue() {
	log.Println("Running job: NotifyCheckoutsDue...")

	cutoff := time.Now().Add(24 * time.Hour)

	var dueSessions []models.BoardingSession
	err := database.DB.
		Preload("Pet.Client").
		Preload("Config").
		Where("status = ? AND expected_check_out_date IS NOT NULL AND expected_check_out_date <= ?",
			models.SessionStatusActive, cutoff).
		Find(&dueSessions).Error
	if err != nil {
		log.Printf("Error checking for due checkouts: %v", err)
		return
	}

	if len(dueSessions) == 0 {
		return
	}

	for _, session := range dueSessions {
		var count int64
		database.DB.Model(&models.Notification{}).
			Where("session_id = ? AND kind = ?", session.ID, "checkout_due").
			Count(&count)
		if count > 0 {
			continue
		}

		message := fmt.Sprintf(
			"Dear %s, %s's stay at the clinic is due for checkout on %s. Please contact us to arrange pickup or extend the stay.",
			session.Pet.Client.FullName,
			session.Pet.Name,
			session.ExpectedCheckOutDate.Format("Jan 2"),
		)

		notification := models.Notification{
			SessionID: &session.ID,
			ClientID:  session.Pet.ClientID,
			Kind:      "checkout_due",
			Phone:     session.Pet.Client.Phone,
			Message:   message,
			Status:    "pending",
		}
		if err := database.DB.Create(&notification).Error; err != nil {
			log.Printf("Error recording checkout alert for session %s: %v", session.ID, err)
			continue
		}

		if err := notifications.SendSMS(notification.Phone, notification.Message); err != nil {
			notification.Status = "failed"
		} else {
			now := time.Now()
			notification.Status = "sent"
			notification.SentAt = &now
		}
		database.DB.Save(&notification)
	}

	log.Printf("Processed %d due checkout(s).", len(dueSessions))
}
