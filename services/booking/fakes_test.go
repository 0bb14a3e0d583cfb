package booking

import (
	"fmt"
	"sync"

	"cleanhaven/models"

	"go.uber.org/zap"
)

// fakeBookingRepo is an in-memory BookingRepository.
type fakeBookingRepo struct {
	mu        sync.Mutex
	seq       int64
	seqErr    error
	createErr error
	bookings  map[string]models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]models.Booking)}
}

func (f *fakeBookingRepo) NextSequence() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.seqErr != nil {
		return 0, f.seqErr
	}
	f.seq++
	return f.seq, nil
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	if b.ID == "" {
		b.ID = fmt.Sprintf("booking-%d", len(f.bookings)+1)
	}
	f.bookings[b.BookingNumber] = *b
	return nil
}

func (f *fakeBookingRepo) GetByNumber(number string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[number]
	if !ok {
		return nil, nil
	}
	copy := b
	return &copy, nil
}

func (f *fakeBookingRepo) UpdateStatus(number string, status models.BookingStatus) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[number]
	if !ok {
		return nil, nil
	}
	b.Status = status
	f.bookings[number] = b
	copy := b
	return &copy, nil
}

func (f *fakeBookingRepo) ListRecent(limit, offset int64) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByStatus(status models.BookingStatus) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByCustomerIDs(customerIDs []string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make(map[string]bool, len(customerIDs))
	for _, id := range customerIDs {
		ids[id] = true
	}
	var out []models.Booking
	for _, b := range f.bookings {
		if ids[b.CustomerID] {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bookings)
}

// fakeCustomerRepo is an in-memory CustomerRepository.
type fakeCustomerRepo struct {
	mu            sync.Mutex
	createErr     error
	subRecordErr  error
	customers     map[string]models.Customer
	ndis          map[string]models.CustomerNDISDetails
	commercial    map[string]models.CustomerCommercialDetails
	endOfLease    map[string]models.CustomerEndOfLeaseDetails
	deleted       []string
	nextID        int
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{
		customers:  make(map[string]models.Customer),
		ndis:       make(map[string]models.CustomerNDISDetails),
		commercial: make(map[string]models.CustomerCommercialDetails),
		endOfLease: make(map[string]models.CustomerEndOfLeaseDetails),
	}
}

func (f *fakeCustomerRepo) Create(c *models.Customer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	c.ID = fmt.Sprintf("customer-%d", f.nextID)
	f.customers[c.ID] = *c
	return nil
}

func (f *fakeCustomerRepo) GetByID(id string) (*models.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.customers[id]
	if !ok {
		return nil, fmt.Errorf("customer %s not found", id)
	}
	copy := c
	return &copy, nil
}

func (f *fakeCustomerRepo) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.customers, id)
	delete(f.ndis, id)
	delete(f.commercial, id)
	delete(f.endOfLease, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeCustomerRepo) ListIDsByScheduleDate(date string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []string
	for id, c := range f.customers {
		if c.ScheduleDate == date {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (f *fakeCustomerRepo) CreateNDISDetails(d *models.CustomerNDISDetails) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.subRecordErr != nil {
		return f.subRecordErr
	}
	f.ndis[d.CustomerID] = *d
	return nil
}

func (f *fakeCustomerRepo) CreateCommercialDetails(d *models.CustomerCommercialDetails) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.subRecordErr != nil {
		return f.subRecordErr
	}
	f.commercial[d.CustomerID] = *d
	return nil
}

func (f *fakeCustomerRepo) CreateEndOfLeaseDetails(d *models.CustomerEndOfLeaseDetails) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.subRecordErr != nil {
		return f.subRecordErr
	}
	f.endOfLease[d.CustomerID] = *d
	return nil
}

func (f *fakeCustomerRepo) GetNDISDetails(customerID string) (*models.CustomerNDISDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.ndis[customerID]
	if !ok {
		return nil, nil
	}
	copy := d
	return &copy, nil
}

func (f *fakeCustomerRepo) GetCommercialDetails(customerID string) (*models.CustomerCommercialDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.commercial[customerID]
	if !ok {
		return nil, nil
	}
	copy := d
	return &copy, nil
}

func (f *fakeCustomerRepo) GetEndOfLeaseDetails(customerID string) (*models.CustomerEndOfLeaseDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.endOfLease[customerID]
	if !ok {
		return nil, nil
	}
	copy := d
	return &copy, nil
}

func (f *fakeCustomerRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.customers)
}

// fakeDetailRepo is an in-memory ServiceDetailRepository.
type fakeDetailRepo struct {
	mu        sync.Mutex
	createErr error
	details   map[string]models.ServiceDetail
	deleted   []string
	nextID    int
}

func newFakeDetailRepo() *fakeDetailRepo {
	return &fakeDetailRepo{details: make(map[string]models.ServiceDetail)}
}

func (f *fakeDetailRepo) key(st models.ServiceType, id string) string {
	return string(st) + "/" + id
}

func (f *fakeDetailRepo) Create(detail models.ServiceDetail) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return "", f.createErr
	}
	f.nextID++
	id := fmt.Sprintf("detail-%d", f.nextID)
	f.details[f.key(detail.ServiceType(), id)] = detail
	return id, nil
}

func (f *fakeDetailRepo) GetByID(st models.ServiceType, id string) (models.ServiceDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.details[f.key(st, id)]
	if !ok {
		return nil, fmt.Errorf("%s details %s not found", st, id)
	}
	return d, nil
}

func (f *fakeDetailRepo) Delete(st models.ServiceType, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.details, f.key(st, id))
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeDetailRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.details)
}

func newTestService() (*DefaultBookingService, *fakeBookingRepo, *fakeCustomerRepo, *fakeDetailRepo) {
	bookings := newFakeBookingRepo()
	customers := newFakeCustomerRepo()
	details := newFakeDetailRepo()
	svc := &DefaultBookingService{
		BookingRepo:  bookings,
		CustomerRepo: customers,
		DetailRepo:   details,
		Logger:       zap.NewNop(),
	}
	return svc, bookings, customers, details
}

func validSubmission() models.BookingSubmission {
	return models.BookingSubmission{
		SelectedService: string(models.ServiceNDIS),
		CustomerDetails: models.CustomerDetailsInput{
			FirstName:    "Ana",
			LastName:     "Lee",
			Email:        "a@b.com",
			Phone:        "0400000000",
			Address:      "1 Main St",
			ScheduleDate: "2025-06-01",
			NDISDetails: &models.NDISDetailsInput{
				NDISNumber:  "123",
				PlanManager: "X",
			},
		},
		ServiceDetails: map[string]any{
			"frequency": "weekly",
			"duration":  float64(3),
		},
		Pricing: models.Pricing{TotalPrice: 150},
	}
}
