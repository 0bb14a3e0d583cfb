package booking

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextBookingNumberFormat(t *testing.T) {
	svc, _, _, _ := newTestService()

	assert.Equal(t, "CH-0001", svc.NextBookingNumber())
	assert.Equal(t, "CH-0002", svc.NextBookingNumber())
}

func TestNextBookingNumberWidensPastFourDigits(t *testing.T) {
	svc, bookings, _, _ := newTestService()
	bookings.seq = 9999

	assert.Equal(t, "CH-10000", svc.NextBookingNumber())
}

func TestNextBookingNumberConcurrentUniqueness(t *testing.T) {
	svc, _, _, _ := newTestService()

	const n = 200
	results := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- svc.NextBookingNumber()
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]bool, n)
	for number := range results {
		assert.False(t, seen[number], "duplicate booking number %s", number)
		seen[number] = true
	}
	require.Len(t, seen, n)
}

func TestNextBookingNumberFallback(t *testing.T) {
	svc, bookings, _, _ := newTestService()
	bookings.seqErr = errors.New("counter unavailable")

	number := svc.NextBookingNumber()
	assert.True(t, strings.HasPrefix(number, "CH-"), "got %s", number)
	assert.Equal(t, number, strings.ToUpper(number))
	// Timestamp plus random suffix is longer than any counter-derived number.
	assert.Greater(t, len(number), len("CH-0001"))
}
