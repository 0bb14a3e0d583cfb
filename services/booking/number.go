package booking

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// bookingNumberPrefix tags every booking number.
const bookingNumberPrefix = "CH"

// NextBookingNumber produces a unique, human-readable booking number.
//
// The primary strategy delegates to the store's atomic counter, which is the
// only place uniqueness can be enforced across concurrent writers and server
// instances. When the counter is unreachable the fallback derives a number
// from a high-resolution timestamp plus a short random suffix, both base-36
// encoded. The fallback trades sequential readability for collision
// resistance; collisions are astronomically unlikely but not excluded.
func (s *DefaultBookingService) NextBookingNumber() string {
	seq, err := s.BookingRepo.NextSequence()
	if err == nil {
		return fmt.Sprintf("%s-%04d", bookingNumberPrefix, seq)
	}

	s.logger().Warn("booking counter unavailable, using fallback number",
		zap.Error(err))

	ts := strconv.FormatInt(time.Now().UnixNano(), 36)
	suffix := strconv.FormatInt(rand.Int63n(36*36*36*36), 36)
	return strings.ToUpper(fmt.Sprintf("%s-%s%s", bookingNumberPrefix, ts, suffix))
}
