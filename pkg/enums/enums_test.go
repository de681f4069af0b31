package enums

import "testing"

func TestParseBookingStatus(t *testing.T) {
	for _, raw := range []string{"pending", "confirmed", "completed", "cancelled"} {
		status, err := ParseBookingStatus(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if status.String() != raw {
			t.Fatalf("round trip mismatch %q", status)
		}
	}
	if _, err := ParseBookingStatus("Canceled"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestBookingStatusTerminal(t *testing.T) {
	tests := map[BookingStatus]bool{
		BookingStatusPending:   false,
		BookingStatusConfirmed: false,
		BookingStatusCompleted: true,
		BookingStatusCancelled: true,
	}
	for status, want := range tests {
		if got := status.IsTerminal(); got != want {
			t.Fatalf("%s terminal: expected %v got %v", status, want, got)
		}
	}
}

func TestBookingBucketsOrder(t *testing.T) {
	buckets := BookingBuckets()
	want := []BookingBucket{BookingBucketCompleted, BookingBucketPending, BookingBucketCancelled}
	if len(buckets) != len(want) {
		t.Fatalf("unexpected bucket count %d", len(buckets))
	}
	for i := range want {
		if buckets[i] != want[i] {
			t.Fatalf("bucket %d: expected %s got %s", i, want[i], buckets[i])
		}
	}
	buckets[0] = "mutated"
	if BookingBuckets()[0] != BookingBucketCompleted {
		t.Fatalf("BookingBuckets must return a copy")
	}
}

func TestCampaignStepIndex(t *testing.T) {
	for i, step := range CampaignSteps() {
		if step.Index() != i {
			t.Fatalf("step %s expected index %d got %d", step, i, step.Index())
		}
		got, ok := CampaignStepAt(i)
		if !ok || got != step {
			t.Fatalf("CampaignStepAt(%d) = %s, %v", i, got, ok)
		}
	}
	if CampaignStep("launch").IsValid() {
		t.Fatalf("unknown step must be invalid")
	}
	if _, ok := CampaignStepAt(5); ok {
		t.Fatalf("index past review must not resolve")
	}
}

func TestParseLoyaltyTierAndPlaceType(t *testing.T) {
	if tier, err := ParseLoyaltyTier("gold"); err != nil || tier != LoyaltyTierGold {
		t.Fatalf("parse gold: %v %v", tier, err)
	}
	if _, err := ParseLoyaltyTier("diamond"); err == nil {
		t.Fatalf("expected diamond to be rejected")
	}
	if pt, err := ParsePlaceType("mobile"); err != nil || pt != PlaceTypeMobile {
		t.Fatalf("parse mobile: %v %v", pt, err)
	}
	if !MemberRoleOwner.IsValid() || MemberRole("viewer").IsValid() {
		t.Fatalf("unexpected member role validity")
	}
}
