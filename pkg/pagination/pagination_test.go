package pagination

import "testing"

func TestNormalizeLimit(t *testing.T) {
	if NormalizeLimit(0) != DefaultLimit {
		t.Fatalf("expected default limit")
	}
	if NormalizeLimit(MaxLimit+1) != MaxLimit {
		t.Fatalf("expected limit capped at max")
	}
	if NormalizeLimit(10) != 10 {
		t.Fatalf("expected limit preserved")
	}
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, info := Slice(items, Params{Limit: 2, Offset: 1})
	if len(page) != 2 || page[0] != 2 || page[1] != 3 {
		t.Fatalf("unexpected page %v", page)
	}
	if !info.HasMore || info.Total != 5 || info.Offset != 1 {
		t.Fatalf("unexpected info %+v", info)
	}

	page, info = Slice(items, Params{Limit: 10, Offset: 3})
	if len(page) != 2 || info.HasMore {
		t.Fatalf("unexpected tail page %v %+v", page, info)
	}

	page, info = Slice(items, Params{Offset: 99})
	if len(page) != 0 || info.Offset != 5 {
		t.Fatalf("offset past the end should clamp, got %v %+v", page, info)
	}

	page, _ = Slice(items, Params{Offset: -3, Limit: 1})
	if len(page) != 1 || page[0] != 1 {
		t.Fatalf("negative offset should clamp to zero, got %v", page)
	}
}
