package api

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name   string
		items  []int
		total  int
		offset int
		want   Page[int]
	}{
		{"first page", []int{1, 2}, 5, 0, Page[int]{Items: []int{1, 2}, Total: 5, Limit: 2, Offset: 0, HasMore: true}},
		{"last page", []int{5}, 5, 4, Page[int]{Items: []int{5}, Total: 5, Limit: 2, Offset: 4, HasMore: false}},
		{"empty", nil, 0, 0, Page[int]{Items: []int{}, Limit: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPage(tt.items, tt.total, 2, tt.offset)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("NewPage() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPageEnvelope(t *testing.T) {
	p := NewPage([]string{"a"}, 3, 1, 0)

	want := DataPage[string]{
		Data:       []string{"a"},
		Pagination: Pagination{Total: 3, Limit: 1, Offset: 0, HasMore: true},
	}
	if diff := cmp.Diff(want, p.Envelope()); diff != "" {
		t.Errorf("Envelope() mismatch (-want +got):\n%s", diff)
	}
}
