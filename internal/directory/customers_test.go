package directory

import (
	"fmt"
	"math/rand/v2"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/salonadmin/pkg/enums"
	"github.com/angelmondragon/salonadmin/pkg/pagination"
	"github.com/angelmondragon/salonadmin/pkg/salon"
)

var tiers = []enums.LoyaltyTier{"", enums.LoyaltyTierBronze, enums.LoyaltyTierSilver, enums.LoyaltyTierGold, enums.LoyaltyTierPlatinum}

// randomCustomers builds listings with deliberate key collisions and odd counters.
func randomCustomers(r *rand.Rand, n int) []salon.Customer {
	out := make([]salon.Customer, n)
	for i := range out {
		total := r.IntN(6) - 1
		out[i] = salon.Customer{
			UserID:            int64(r.IntN(5)),
			PlaceID:           int64(r.IntN(3) + 1),
			Name:              fmt.Sprintf("Client %c%d", 'A'+rune(r.IntN(4)), i),
			Email:             fmt.Sprintf("user%d@Mail.test", r.IntN(5)),
			TotalBookings:     total,
			CompletedBookings: r.IntN(7) - 1,
			Tier:              tiers[r.IntN(len(tiers))],
		}
	}
	return out
}

func forEachListing(t *testing.T, fn func(t *testing.T, records []salon.Customer)) {
	t.Helper()
	r := rand.New(rand.NewPCG(42, 7))
	for i := 0; i < 200; i++ {
		records := randomCustomers(r, r.IntN(30))
		t.Run(fmt.Sprintf("listing-%d", i), func(t *testing.T) {
			fn(t, records)
		})
	}
}

func TestDeduplicateIdempotentAndShrinking(t *testing.T) {
	forEachListing(t, func(t *testing.T, records []salon.Customer) {
		once := DeduplicateCustomers(records)
		twice := DeduplicateCustomers(once)
		require.LessOrEqual(t, len(once), len(records))
		require.Equal(t, once, twice)

		seen := map[salon.CustomerKey]bool{}
		for _, c := range once {
			require.False(t, seen[c.Key()], "duplicate key %+v", c.Key())
			seen[c.Key()] = true
		}
	})
}

func TestDeduplicateDoesNotMutateInput(t *testing.T) {
	records := []salon.Customer{
		{Email: "a@x.com", PlaceID: 1, Name: "first"},
		{Email: "a@x.com", PlaceID: 1, Name: "second"},
	}
	snapshot := append([]salon.Customer(nil), records...)
	out := DeduplicateCustomers(records)
	out[0].Name = "changed"
	if !reflect.DeepEqual(records, snapshot) {
		t.Fatalf("input mutated: %+v", records)
	}
}

func TestDeduplicateSharedEmailAcrossPlaces(t *testing.T) {
	records := []salon.Customer{
		{UserID: 1, Email: "a@x.com", PlaceID: 1, Name: "first"},
		{UserID: 1, Email: "a@x.com", PlaceID: 2, Name: "other place"},
		{UserID: 9, Email: "a@x.com", PlaceID: 1, Name: "fan-out"},
	}
	out := DeduplicateCustomers(records)
	if len(out) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(out))
	}
	if out[0].Name != "first" || out[1].Name != "other place" {
		t.Fatalf("first occurrence must win in input order: %+v", out)
	}
}

func TestSearchProperties(t *testing.T) {
	forEachListing(t, func(t *testing.T, records []salon.Customer) {
		require.Equal(t, records, SearchCustomers(records, ""))
		require.Equal(t, records, SearchCustomers(records, "   "))

		for _, term := range []string{"client a", "MAIL", "user3", "zzz"} {
			for _, c := range SearchCustomers(records, term) {
				needle := strings.ToLower(term)
				matched := strings.Contains(strings.ToLower(c.Name), needle) ||
					strings.Contains(strings.ToLower(c.Email), needle)
				require.True(t, matched, "%q matched %+v", term, c)
			}
		}
	})
}

func TestSearchNoMatchIsEmptyNotNil(t *testing.T) {
	out := SearchCustomers([]salon.Customer{{Name: "Ana"}}, "bob")
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", out)
	}
}

func TestTierCountMatchesDeduplicated(t *testing.T) {
	forEachListing(t, func(t *testing.T, records []salon.Customer) {
		want := 0
		for _, c := range DeduplicateCustomers(records) {
			if c.Tier == enums.LoyaltyTierGold {
				want++
			}
		}
		got := Aggregate(FilterByTier(DeduplicateCustomers(records), enums.LoyaltyTierGold))
		require.Equal(t, want, got.Count)
	})
}

func TestBookingBucketsPartition(t *testing.T) {
	forEachListing(t, func(t *testing.T, records []salon.Customer) {
		deduped := DeduplicateCustomers(records)
		var union []salon.Customer
		seen := map[salon.CustomerKey]int{}
		for _, bucket := range enums.BookingBuckets() {
			for _, c := range FilterByBookingStatus(deduped, bucket) {
				seen[c.Key()]++
				union = append(union, c)
			}
		}
		require.Len(t, union, len(deduped))
		for key, n := range seen {
			require.Equal(t, 1, n, "customer %+v in %d buckets", key, n)
		}
	})
}

func TestClassifyBookingsFirstMatchWins(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		completed int
		want      enums.BookingBucket
	}{
		{name: "completed with pending", total: 5, completed: 2, want: enums.BookingBucketCompleted},
		{name: "all completed", total: 2, completed: 2, want: enums.BookingBucketCompleted},
		{name: "only pending", total: 3, completed: 0, want: enums.BookingBucketPending},
		{name: "no bookings", total: 0, completed: 0, want: enums.BookingBucketCancelled},
		{name: "negative counters", total: -3, completed: -1, want: enums.BookingBucketCancelled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyBookings(salon.Customer{TotalBookings: tt.total, CompletedBookings: tt.completed})
			if got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestAggregateUsesFilteredSet(t *testing.T) {
	records := []salon.Customer{
		{Email: "a@x.com", PlaceID: 1, Tier: enums.LoyaltyTierGold, TotalBookings: 5, CompletedBookings: 2},
		{Email: "b@x.com", PlaceID: 1, Tier: enums.LoyaltyTierSilver, TotalBookings: 10, CompletedBookings: 10},
		{Email: "c@x.com", PlaceID: 1, Tier: enums.LoyaltyTierGold, TotalBookings: 1},
	}
	dir := ReconcileCustomers(records, CustomerQuery{Tier: enums.LoyaltyTierGold})
	assert.Equal(t, CustomerSummary{Count: 2, ActiveBookings: 4, CompletedBookings: 2}, dir.Summary)
}

func TestFilterOrderIsIrrelevant(t *testing.T) {
	forEachListing(t, func(t *testing.T, records []salon.Customer) {
		deduped := DeduplicateCustomers(records)
		a := FilterByBookingStatus(FilterByTier(SearchCustomers(deduped, "client b"), enums.LoyaltyTierSilver), enums.BookingBucketPending)
		b := SearchCustomers(FilterByTier(FilterByBookingStatus(deduped, enums.BookingBucketPending), enums.LoyaltyTierSilver), "client b")
		require.Equal(t, a, b)
	})
}

func TestReconcileCustomersPagesAfterSummary(t *testing.T) {
	var records []salon.Customer
	for i := 0; i < 7; i++ {
		records = append(records, salon.Customer{
			Email:             fmt.Sprintf("c%d@x.com", i),
			PlaceID:           1,
			TotalBookings:     2,
			CompletedBookings: 1,
		})
	}
	dir := ReconcileCustomers(records, CustomerQuery{Page: pagination.Params{Limit: 3, Offset: 6}})
	require.Len(t, dir.Customers, 1)
	assert.Equal(t, 7, dir.Summary.Count)
	assert.Equal(t, 7, dir.Summary.CompletedBookings)
	assert.Equal(t, pagination.Info{Limit: 3, Offset: 6, Total: 7, HasMore: false}, dir.Page)
}
