package enums

import "fmt"

// BookingBucket classifies a customer by their booking counters.
// Declaration order matters: classification takes the first bucket that matches.
type BookingBucket string

const (
	BookingBucketCompleted BookingBucket = "completed"
	BookingBucketPending   BookingBucket = "pending"
	BookingBucketCancelled BookingBucket = "cancelled"
)

var orderedBookingBuckets = []BookingBucket{
	BookingBucketCompleted,
	BookingBucketPending,
	BookingBucketCancelled,
}

// BookingBuckets returns the buckets in classification order.
func BookingBuckets() []BookingBucket {
	out := make([]BookingBucket, len(orderedBookingBuckets))
	copy(out, orderedBookingBuckets)
	return out
}

// String implements fmt.Stringer.
func (b BookingBucket) String() string {
	return string(b)
}

// IsValid reports whether the value is a known BookingBucket.
func (b BookingBucket) IsValid() bool {
	for _, candidate := range orderedBookingBuckets {
		if candidate == b {
			return true
		}
	}
	return false
}

// ParseBookingBucket converts raw input into a BookingBucket.
func ParseBookingBucket(value string) (BookingBucket, error) {
	for _, candidate := range orderedBookingBuckets {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid booking status filter %q", value)
}
