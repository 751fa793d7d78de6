package domain

import "testing"

func TestCollectionPageMetadata(t *testing.T) {
	all := []int{1, 2, 3, 4, 5, 6, 7}

	page := NewCollectionPage(all, PagingFilter{PageNumber: 0, PageSize: 3})
	if page.TotalCount != 7 || page.PagesCount != 3 || len(page.Items) != 3 {
		t.Fatalf("page 0: items=%d total=%d pages=%d, want 3/7/3", len(page.Items), page.TotalCount, page.PagesCount)
	}

	last := NewCollectionPage(all, PagingFilter{PageNumber: 2, PageSize: 3})
	if len(last.Items) != 1 || last.Items[0] != 7 {
		t.Fatalf("last page: %v, want [7]", last.Items)
	}

	beyond := NewCollectionPage(all, PagingFilter{PageNumber: 5, PageSize: 3})
	if len(beyond.Items) != 0 || beyond.TotalCount != 7 {
		t.Fatalf("page beyond the end: items=%v total=%d, want empty with total 7", beyond.Items, beyond.TotalCount)
	}
}

// TestCollectionPageCoversAll checks that concatenating all pages yields
// exactly the filtered set, in order.
func TestCollectionPageCoversAll(t *testing.T) {
	all := []int{10, 20, 30, 40, 50}
	pageSize := 2

	var got []int
	first := NewCollectionPage(all, PagingFilter{PageNumber: 0, PageSize: pageSize})
	for p := 0; p < first.PagesCount; p++ {
		page := NewCollectionPage(all, PagingFilter{PageNumber: p, PageSize: pageSize})
		got = append(got, page.Items...)
	}

	if len(got) != first.TotalCount {
		t.Fatalf("pages cover %d items, total says %d", len(got), first.TotalCount)
	}
	for i, v := range got {
		if v != all[i] {
			t.Fatalf("item %d = %d, want %d (order must be stable across pages)", i, v, all[i])
		}
	}
}
