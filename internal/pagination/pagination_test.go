package pagination

import (
	"reflect"
	"testing"
)

func TestDefaults(t *testing.T) {
	req := PageRequest{}
	req.Defaults()
	if req.Page != 1 || req.PageSize != 20 {
		t.Errorf("expected defaults 1/20, got %d/%d", req.Page, req.PageSize)
	}

	req = PageRequest{Page: 3, PageSize: 5}
	req.Defaults()
	if req.Page != 3 || req.PageSize != 5 {
		t.Errorf("expected provided values preserved, got %d/%d", req.Page, req.PageSize)
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	t.Run("cuts the requested page", func(t *testing.T) {
		resp := Paginate(items, PageRequest{Page: 2, PageSize: 3})
		if !reflect.DeepEqual(resp.Data, []int{4, 5, 6}) {
			t.Errorf("unexpected page data: %v", resp.Data)
		}
		if resp.TotalItems != 7 || resp.TotalPages != 3 {
			t.Errorf("unexpected metadata: items=%d pages=%d", resp.TotalItems, resp.TotalPages)
		}
	})

	t.Run("last partial page", func(t *testing.T) {
		resp := Paginate(items, PageRequest{Page: 3, PageSize: 3})
		if !reflect.DeepEqual(resp.Data, []int{7}) {
			t.Errorf("unexpected page data: %v", resp.Data)
		}
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		resp := Paginate(items, PageRequest{Page: 10, PageSize: 3})
		if len(resp.Data) != 0 {
			t.Errorf("expected empty data, got %v", resp.Data)
		}
		if resp.TotalItems != 7 {
			t.Errorf("expected total preserved, got %d", resp.TotalItems)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		resp := Paginate([]int(nil), PageRequest{})
		if len(resp.Data) != 0 || resp.TotalItems != 0 || resp.TotalPages != 0 {
			t.Errorf("unexpected response for empty input: %+v", resp)
		}
	})
}
