package response

import "testing"

func TestNormalizePage(t *testing.T) {
	page, size, offset := NormalizePage(0, 0)
	if page != 1 || size != DefaultPageSize || offset != 0 {
		t.Fatalf("unexpected defaults: %d %d %d", page, size, offset)
	}
	page, size, offset = NormalizePage(3, 500)
	if page != 3 || size != MaxPageSize || offset != 2*MaxPageSize {
		t.Fatalf("unexpected clamp: %d %d %d", page, size, offset)
	}
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 25, 10)
	if p.TotalPages != 3 || !p.HasMore || p.From != 11 || p.To != 20 {
		t.Fatalf("unexpected pagination: %+v", p)
	}
	p = NewPagination(3, 10, 25, 5)
	if p.HasMore || p.From != 21 || p.To != 25 {
		t.Fatalf("unexpected last page: %+v", p)
	}
	p = NewPagination(1, 10, 0, 0)
	if p.TotalPages != 0 || p.From != 0 || p.To != 0 {
		t.Fatalf("unexpected empty page: %+v", p)
	}
}
