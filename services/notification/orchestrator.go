package notification

import (
	"fmt"
	"sync"
	"time"

	"cleanhaven/models"
	"cleanhaven/services/mailer"

	"go.uber.org/zap"
)

// NotifyBookingCreated fans out the post-booking side effects: admin email,
// customer email, audit log row and the workforce-scheduling webhook. The
// four tasks run concurrently and are supervised independently: one failing
// or panicking never prevents the others and never reaches the caller. The
// join exists purely so the settled outcome can be logged.
func (s *DefaultNotificationService) NotifyBookingCreated(aggregate *models.BookingAggregate) {
	if aggregate == nil {
		s.logger().Error("no booking data available for notification")
		return
	}

	log := s.logger().With(zap.String("bookingNumber", aggregate.Booking.BookingNumber))

	var wg sync.WaitGroup
	run := func(name string, task func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Error("notification task panicked",
						zap.String("task", name), zap.Any("panic", r))
				}
			}()
			task()
		}()
	}

	run("admin email", func() { s.sendAdminEmail(log, aggregate) })
	run("customer email", func() { s.sendCustomerEmail(log, aggregate) })
	run("audit log", func() { s.writeAuditLog(log, aggregate) })
	run("workforce webhook", func() { s.triggerWorkforce(log, aggregate) })

	wg.Wait()
	log.Info("post-booking notifications settled")
}

// sendAdminEmail notifies the business of the new booking and tracks the
// delivery in the notification log.
func (s *DefaultNotificationService) sendAdminEmail(log *zap.Logger, aggregate *models.BookingAggregate) {
	booking := aggregate.Booking
	customer := aggregate.Customer

	entry := &models.Notification{
		Kind:           models.NotificationKindDelivery,
		BookingID:      booking.ID,
		BookingNumber:  booking.BookingNumber,
		Type:           "booking_created",
		Title:          fmt.Sprintf("New Booking Created - %s", booking.BookingNumber),
		Message:        fmt.Sprintf("A new %s booking has been created for %s %s", booking.SelectedService, customer.FirstName, customer.LastName),
		DeliveryMethod: "email",
		RecipientEmail: s.AdminEmail,
		Status:         models.NotificationStatusPending,
		MaxRetries:     3,
	}

	s.deliver(log, entry, mailer.Message{
		To:         s.AdminEmail,
		TemplateID: s.AdminTemplateID,
		Data: map[string]any{
			"company_name":    s.CompanyName,
			"booking_number":  booking.BookingNumber,
			"service_type":    string(booking.SelectedService),
			"customer_name":   fmt.Sprintf("%s %s", customer.FirstName, customer.LastName),
			"customer_email":  customer.Email,
			"customer_phone":  customer.Phone,
			"customer_address": customer.Address,
			"schedule_date":   customer.ScheduleDate,
			"total_price":     booking.Pricing.TotalPrice,
			"submission_date": time.Now().Format("2/1/2006, 3:04:05 PM"),
		},
	})
}

// sendCustomerEmail confirms the booking to the customer and tracks the
// delivery in the notification log.
func (s *DefaultNotificationService) sendCustomerEmail(log *zap.Logger, aggregate *models.BookingAggregate) {
	booking := aggregate.Booking
	customer := aggregate.Customer

	entry := &models.Notification{
		Kind:           models.NotificationKindDelivery,
		BookingID:      booking.ID,
		BookingNumber:  booking.BookingNumber,
		Type:           "booking_confirmation",
		Title:          fmt.Sprintf("Booking Confirmation - %s", booking.BookingNumber),
		Message:        fmt.Sprintf("Confirmation email for %s booking %s", booking.SelectedService, booking.BookingNumber),
		DeliveryMethod: "email",
		RecipientEmail: customer.Email,
		Status:         models.NotificationStatusPending,
		MaxRetries:     3,
	}

	s.deliver(log, entry, mailer.Message{
		To:         customer.Email,
		TemplateID: s.CustomerTemplateID,
		Data: map[string]any{
			"company_name":    s.CompanyName,
			"booking_number":  booking.BookingNumber,
			"customer_name":   customer.FirstName,
			"service_type":    string(booking.SelectedService),
			"schedule_date":   customer.ScheduleDate,
			"submission_date": time.Now().Format("2/1/2006, 3:04:05 PM"),
		},
	})
}

// deliver writes the pending log row, attempts the send, and resolves the row
// to sent or failed. Failed deliveries are terminal; the retry counter is
// informational only.
func (s *DefaultNotificationService) deliver(log *zap.Logger, entry *models.Notification, msg mailer.Message) {
	if err := s.Repo.Create(entry); err != nil {
		log.Error("failed to log notification", zap.String("type", entry.Type), zap.Error(err))
		return
	}

	result, err := s.Mailer.Send(msg)
	if err != nil {
		retries := 1
		updateErr := s.Repo.UpdateStatus(entry.ID, models.NotificationStatusUpdate{
			Status:       models.NotificationStatusFailed,
			ErrorMessage: err.Error(),
			RetryCount:   &retries,
		})
		if updateErr != nil {
			log.Error("failed to record notification failure", zap.String("type", entry.Type), zap.Error(updateErr))
		}
		log.Warn("notification email failed", zap.String("type", entry.Type), zap.Error(err))
		return
	}

	now := time.Now()
	if err := s.Repo.UpdateStatus(entry.ID, models.NotificationStatusUpdate{
		Status:         models.NotificationStatusSent,
		ExternalID:     result.MessageID,
		ExternalStatus: fmt.Sprintf("Email sent successfully (Status: %d)", result.StatusCode),
		SentAt:         &now,
	}); err != nil {
		log.Error("failed to record notification success", zap.String("type", entry.Type), zap.Error(err))
		return
	}
	log.Info("notification email sent", zap.String("type", entry.Type), zap.String("messageId", result.MessageID))
}

// writeAuditLog records a denormalized snapshot of the booking in the
// notification log. Pure audit: never updated after the write.
func (s *DefaultNotificationService) writeAuditLog(log *zap.Logger, aggregate *models.BookingAggregate) {
	booking := aggregate.Booking
	customer := aggregate.Customer

	entry := &models.Notification{
		Kind:          models.NotificationKindAudit,
		BookingID:     booking.ID,
		BookingNumber: booking.BookingNumber,
		Type:          "booking_audit",
		Title:         fmt.Sprintf("Booking Recorded - %s", booking.BookingNumber),
		Message:       fmt.Sprintf("%s booking for %s %s on %s", booking.SelectedService, customer.FirstName, customer.LastName, customer.ScheduleDate),
		Status:        models.NotificationStatusSent,
		Metadata: map[string]any{
			"bookingNumber":   booking.BookingNumber,
			"selectedService": string(booking.SelectedService),
			"customerName":    fmt.Sprintf("%s %s", customer.FirstName, customer.LastName),
			"customerEmail":   customer.Email,
			"scheduleDate":    customer.ScheduleDate,
			"totalPrice":      booking.Pricing.TotalPrice,
			"status":          string(booking.Status),
		},
	}

	if err := s.Repo.Create(entry); err != nil {
		log.Error("failed to write booking audit log", zap.Error(err))
		return
	}
	log.Debug("booking audit log written")
}

// triggerWorkforce notifies the workforce-scheduling system of the new
// booking. Failures are logged and swallowed.
func (s *DefaultNotificationService) triggerWorkforce(log *zap.Logger, aggregate *models.BookingAggregate) {
	if s.Workforce == nil {
		return
	}
	if err := s.Workforce.NotifyNewBooking(aggregate.Booking.BookingNumber); err != nil {
		log.Warn("workforce webhook failed", zap.Error(err))
		return
	}
	log.Info("workforce webhook delivered")
}
