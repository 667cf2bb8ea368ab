package state

import (
	"reflect"
	"testing"
)

func TestPager_EmptyListHasOnePage(t *testing.T) {
	p := NewPager(5)
	p.SetTotal(0)
	if p.TotalPages() != 1 || p.Current() != 1 {
		t.Fatalf("empty pager = page %d/%d, want 1/1", p.Current(), p.TotalPages())
	}
	if got := Page(&p, []int{}); len(got) != 0 {
		t.Fatalf("Page(empty) = %v, want empty", got)
	}
}

func TestPager_GoToOutOfRangeIsNoop(t *testing.T) {
	p := NewPager(5)
	p.SetTotal(12)

	if p.TotalPages() != 3 {
		t.Fatalf("TotalPages = %d, want 3", p.TotalPages())
	}
	if !p.GoTo(2) || p.Current() != 2 {
		t.Fatalf("GoTo(2) failed; current=%d", p.Current())
	}

	tests := []int{0, -1, 4, 100}
	for _, page := range tests {
		if p.GoTo(page) {
			t.Fatalf("GoTo(%d) = true, want false", page)
		}
		if p.Current() != 2 {
			t.Fatalf("GoTo(%d) moved pager to %d", page, p.Current())
		}
	}
}

func TestPager_SliceAndNavigation(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}
	p := NewPager(3)
	p.SetTotal(len(items))

	if got := Page(&p, items); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Fatalf("page 1 = %v", got)
	}
	if p.Prev() {
		t.Fatalf("Prev on page 1 = true, want false")
	}
	p.Next()
	p.Next()
	if got := Page(&p, items); !reflect.DeepEqual(got, []int{7}) {
		t.Fatalf("page 3 = %v, want [7]", got)
	}
	if p.Next() {
		t.Fatalf("Next on last page = true, want false")
	}
	if got := p.View(); got != "3/3" {
		t.Fatalf("View = %q, want 3/3", got)
	}
}

func TestPager_ShrinkingListClampsPage(t *testing.T) {
	p := NewPager(2)
	p.SetTotal(6)
	p.GoTo(3)

	p.SetTotal(3)
	if p.Current() != 2 || p.TotalPages() != 2 {
		t.Fatalf("after shrink = page %d/%d, want 2/2", p.Current(), p.TotalPages())
	}

	p.SetTotal(0)
	if p.Current() != 1 {
		t.Fatalf("after empty = page %d, want 1", p.Current())
	}
}

func TestPager_SetPageSize(t *testing.T) {
	p := NewPager(0)
	if p.PageSize() != DefaultPageSize {
		t.Fatalf("PageSize = %d, want default %d", p.PageSize(), DefaultPageSize)
	}
	p.SetTotal(20)
	p.GoTo(3)

	p.SetPageSize(10)
	if p.Current() != 1 || p.TotalPages() != 2 {
		t.Fatalf("after SetPageSize = page %d/%d, want 1/2", p.Current(), p.TotalPages())
	}

	var zero Pager
	if zero.TotalPages() != 1 || zero.PageSize() != DefaultPageSize {
		t.Fatalf("zero Pager not usable: %d pages size %d", zero.TotalPages(), zero.PageSize())
	}
}
