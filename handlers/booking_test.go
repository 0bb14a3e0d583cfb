package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cleanhaven/models"
	"cleanhaven/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubBookingService answers with canned results per method.
type stubBookingService struct {
	createFn func(models.BookingSubmission) (*models.BookingAggregate, error)
	getFn    func(string) (*models.BookingAggregate, error)
	updateFn func(string, models.BookingStatus) (*models.Booking, error)
	listFn   func() ([]models.Booking, error)
}

func (s *stubBookingService) CreateBooking(sub models.BookingSubmission) (*models.BookingAggregate, error) {
	return s.createFn(sub)
}

func (s *stubBookingService) GetBookingByNumber(number string) (*models.BookingAggregate, error) {
	return s.getFn(number)
}

func (s *stubBookingService) UpdateBookingStatus(number string, status models.BookingStatus) (*models.Booking, error) {
	return s.updateFn(number, status)
}

func (s *stubBookingService) ListRecentBookings(limit, offset int64) ([]models.Booking, error) {
	return s.listFn()
}

func (s *stubBookingService) ListPendingBookings() ([]models.Booking, error) {
	return s.listFn()
}

func (s *stubBookingService) ListTodaysBookings() ([]models.Booking, error) {
	return s.listFn()
}

// stubNotifier records fan-out invocations so tests can wait for the
// fire-and-forget goroutine.
type stubNotifier struct {
	notified chan *models.BookingAggregate
}

func newStubNotifier() *stubNotifier {
	return &stubNotifier{notified: make(chan *models.BookingAggregate, 1)}
}

func (s *stubNotifier) NotifyBookingCreated(aggregate *models.BookingAggregate) {
	s.notified <- aggregate
}

func (s *stubNotifier) GetBookingNotifications(bookingNumber string) ([]models.Notification, error) {
	return nil, nil
}

func (s *stubNotifier) GetNotificationsByStatus(status models.NotificationStatus, limit int64) ([]models.Notification, error) {
	return nil, nil
}

func handlerAggregate() *models.BookingAggregate {
	return &models.BookingAggregate{
		Booking: models.Booking{
			ID:              "booking-1",
			BookingNumber:   "CH-0042",
			Status:          models.BookingStatusPending,
			SelectedService: models.ServiceRegular,
			Pricing:         models.Pricing{TotalPrice: 120},
		},
		Customer: models.Customer{
			ID:        "customer-1",
			FirstName: "Ana",
			LastName:  "Lee",
			Email:     "a@b.com",
		},
		ServiceDetail: &models.RegularCleaningDetails{Frequency: "weekly"},
	}
}

func newBookingRouter(svc booking.BookingService, notifier *stubNotifier) *gin.Engine {
	h := NewBookingHandler(svc, notifier, nil, zap.NewNop())
	r := gin.New()
	r.POST("/api/bookings", h.CreateBooking)
	r.GET("/api/bookings/:bookingNumber", h.GetBooking)
	r.PATCH("/api/bookings/:bookingNumber/status", h.UpdateStatus)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCreateBookingRejectsMalformedJSON(t *testing.T) {
	r := newBookingRouter(&stubBookingService{}, newStubNotifier())

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid booking payload", body["message"])
}

func TestCreateBookingValidationResponse(t *testing.T) {
	svc := &stubBookingService{
		createFn: func(models.BookingSubmission) (*models.BookingAggregate, error) {
			return nil, &booking.ValidationError{Field: "email", Message: "Customer email is required"}
		},
	}
	r := newBookingRouter(svc, newStubNotifier())

	w := postJSON(t, r, "/api/bookings", map[string]any{"selectedService": "Regular Cleaning"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "", body["bookingNumber"])
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Customer email is required", body["message"])
}

func TestCreateBookingUnknownServiceTypeResponse(t *testing.T) {
	svc := &stubBookingService{
		createFn: func(models.BookingSubmission) (*models.BookingAggregate, error) {
			return nil, &booking.UnknownServiceTypeError{Tag: "Window Washing"}
		},
	}
	r := newBookingRouter(svc, newStubNotifier())

	w := postJSON(t, r, "/api/bookings", map[string]any{"selectedService": "Window Washing"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "unknown service type: Window Washing", body["message"])
}

func TestCreateBookingMissingDetailsResponse(t *testing.T) {
	svc := &stubBookingService{
		createFn: func(models.BookingSubmission) (*models.BookingAggregate, error) {
			return nil, &booking.DetailValidationError{Field: "serviceDetails"}
		},
	}
	r := newBookingRouter(svc, newStubNotifier())

	w := postJSON(t, r, "/api/bookings", map[string]any{"selectedService": "Regular Cleaning"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Service details are required", body["message"])
}

func TestCreateBookingStoreFailureResponse(t *testing.T) {
	svc := &stubBookingService{
		createFn: func(models.BookingSubmission) (*models.BookingAggregate, error) {
			return nil, &booking.PersistenceError{Op: "create booking", Err: errors.New("connection reset")}
		},
	}
	r := newBookingRouter(svc, newStubNotifier())

	w := postJSON(t, r, "/api/bookings", map[string]any{"selectedService": "Regular Cleaning"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "An unexpected error occurred. Please try again later.", body["message"])
	// Store detail never leaks to the client.
	assert.NotContains(t, w.Body.String(), "connection reset")
}

func TestCreateBookingSuccessTriggersNotifications(t *testing.T) {
	aggregate := handlerAggregate()
	svc := &stubBookingService{
		createFn: func(models.BookingSubmission) (*models.BookingAggregate, error) {
			return aggregate, nil
		},
	}
	notifier := newStubNotifier()
	r := newBookingRouter(svc, notifier)

	w := postJSON(t, r, "/api/bookings", map[string]any{"selectedService": "Regular Cleaning"})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "CH-0042", body["bookingNumber"])
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, "Booking submitted successfully! You will receive a confirmation email shortly.", body["message"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "CH-0042", data["bookingNumber"])

	// The fan-out runs after the response, on its own goroutine.
	select {
	case got := <-notifier.notified:
		assert.Equal(t, aggregate, got)
	case <-time.After(time.Second):
		t.Fatal("notification fan-out was not triggered")
	}
}

func TestGetBookingNotFound(t *testing.T) {
	svc := &stubBookingService{
		getFn: func(string) (*models.BookingAggregate, error) {
			return nil, booking.ErrNotFound
		},
	}
	r := newBookingRouter(svc, newStubNotifier())

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/CH-9999", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Booking not found", body["message"])
}

func TestGetBookingReturnsView(t *testing.T) {
	aggregate := handlerAggregate()
	svc := &stubBookingService{
		getFn: func(number string) (*models.BookingAggregate, error) {
			assert.Equal(t, "CH-0042", number)
			return aggregate, nil
		},
	}
	r := newBookingRouter(svc, newStubNotifier())

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/CH-0042", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "CH-0042", body["bookingNumber"])
	assert.Equal(t, "Regular Cleaning", body["selectedService"])

	customerDetails, ok := body["customerDetails"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ana", customerDetails["firstName"])
}

func TestUpdateStatus(t *testing.T) {
	svc := &stubBookingService{
		updateFn: func(number string, status models.BookingStatus) (*models.Booking, error) {
			return &models.Booking{BookingNumber: number, Status: status}, nil
		},
	}
	r := newBookingRouter(svc, newStubNotifier())

	body, _ := json.Marshal(map[string]string{"status": "confirmed"})
	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/CH-0042/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "confirmed", resp["status"])
}

func TestUpdateStatusNotFound(t *testing.T) {
	svc := &stubBookingService{
		updateFn: func(string, models.BookingStatus) (*models.Booking, error) {
			return nil, booking.ErrNotFound
		},
	}
	r := newBookingRouter(svc, newStubNotifier())

	body, _ := json.Marshal(map[string]string{"status": "confirmed"})
	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/CH-9999/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateStatusRejectsInvalid(t *testing.T) {
	svc := &stubBookingService{
		updateFn: func(string, models.BookingStatus) (*models.Booking, error) {
			return nil, &booking.ValidationError{Field: "status", Message: "Invalid booking status"}
		},
	}
	r := newBookingRouter(svc, newStubNotifier())

	body, _ := json.Marshal(map[string]string{"status": "archived"})
	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/CH-0042/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "Invalid booking status", resp["message"])
}

func TestListBookings(t *testing.T) {
	svc := &stubBookingService{
		listFn: func() ([]models.Booking, error) {
			return []models.Booking{{BookingNumber: "CH-0001"}, {BookingNumber: "CH-0002"}}, nil
		},
	}
	h := NewAdminHandler(svc, zap.NewNop())
	r := gin.New()
	r.GET("/api/admin/bookings", h.ListBookings)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings?limit=10", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	bookings, ok := body["bookings"].([]any)
	require.True(t, ok)
	assert.Len(t, bookings, 2)
}
