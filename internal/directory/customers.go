package directory

import (
	"github.com/angelmondragon/salonadmin/pkg/enums"
	"github.com/angelmondragon/salonadmin/pkg/pagination"
	"github.com/angelmondragon/salonadmin/pkg/salon"
)

// CustomerQuery holds the optional customer filters. Zero values disable a filter.
type CustomerQuery struct {
	Search        string
	Tier          enums.LoyaltyTier
	BookingStatus enums.BookingBucket
	Page          pagination.Params
}

// CustomerSummary is computed over the filtered set, never the raw listing.
type CustomerSummary struct {
	Count             int `json:"count"`
	ActiveBookings    int `json:"active_bookings"`
	CompletedBookings int `json:"completed_bookings"`
}

// CustomerDirectory is one page of the reconciled customer list plus its summary.
type CustomerDirectory struct {
	Customers []salon.Customer `json:"customers"`
	Summary   CustomerSummary  `json:"summary"`
	Page      pagination.Info  `json:"page"`
}

func customerKey(c salon.Customer) salon.CustomerKey {
	return c.Key()
}

func customerSearchFields(c salon.Customer) []string {
	return []string{c.Name, c.Email}
}

// DeduplicateCustomers keeps one record per (email, place) pair.
func DeduplicateCustomers(records []salon.Customer) []salon.Customer {
	return Deduplicate(records, customerKey)
}

// SearchCustomers matches term against name and email, case-insensitively.
func SearchCustomers(records []salon.Customer, term string) []salon.Customer {
	return FilterBySearch(records, term, customerSearchFields)
}

// FilterByTier keeps exact tier matches. An empty tier means no filter.
func FilterByTier(records []salon.Customer, tier enums.LoyaltyTier) []salon.Customer {
	if tier == "" {
		return records
	}
	return Filter(records, func(c salon.Customer) bool {
		return c.Tier == tier
	})
}

// ClassifyBookings places a customer in exactly one bucket. Buckets are tried in
// declaration order, so a customer with completed and outstanding bookings is "completed".
func ClassifyBookings(c salon.Customer) enums.BookingBucket {
	total, completed := c.Total(), c.Completed()
	switch {
	case completed > 0:
		return enums.BookingBucketCompleted
	case total > completed:
		return enums.BookingBucketPending
	default:
		return enums.BookingBucketCancelled
	}
}

// FilterByBookingStatus keeps customers classified into bucket. An empty bucket means no filter.
func FilterByBookingStatus(records []salon.Customer, bucket enums.BookingBucket) []salon.Customer {
	if bucket == "" {
		return records
	}
	return Filter(records, func(c salon.Customer) bool {
		return ClassifyBookings(c) == bucket
	})
}

// Aggregate summarises exactly the records it is given.
func Aggregate(records []salon.Customer) CustomerSummary {
	summary := CustomerSummary{Count: len(records)}
	for _, c := range records {
		summary.ActiveBookings += c.PendingBookings()
		summary.CompletedBookings += c.Completed()
	}
	return summary
}

// ReconcileCustomers dedupes, applies every filter and summarises the result before
// cutting the requested page.
func ReconcileCustomers(records []salon.Customer, query CustomerQuery) CustomerDirectory {
	view := DeduplicateCustomers(records)
	view = SearchCustomers(view, query.Search)
	view = FilterByTier(view, query.Tier)
	view = FilterByBookingStatus(view, query.BookingStatus)

	summary := Aggregate(view)
	page, info := pagination.Slice(view, query.Page)
	return CustomerDirectory{
		Customers: page,
		Summary:   summary,
		Page:      info,
	}
}
