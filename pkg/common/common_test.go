package common

import (
	"strings"
	"testing"
)

func TestGenerateTrxNo(t *testing.T) {
	trx := GenerateTrxNo()
	if len(trx) != 11 {
		t.Errorf("Expected length 11, got %d (%s)", len(trx), trx)
	}
	if !strings.HasPrefix(trx, "KS-") {
		t.Errorf("Expected KS- prefix, got %s", trx)
	}

	const validChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	for _, char := range trx[3:] {
		if !strings.ContainsRune(validChars, char) {
			t.Errorf("Invalid character found: %c", char)
		}
	}
}

func TestPaginateResponse(t *testing.T) {
	total := int64(100)
	limit := 10
	data := []string{"item1", "item2"}

	res := PaginateResponse(data, total, 1, limit, "")
	if res.CurrentPage != 1 {
		t.Errorf("Expected CurrentPage 1, got %d", res.CurrentPage)
	}
	if res.LastPage != 10 {
		t.Errorf("Expected LastPage 10, got %d", res.LastPage)
	}
	if res.NextPage != 2 {
		t.Errorf("Expected NextPage 2, got %d", res.NextPage)
	}
	if res.PrevPage != 0 {
		t.Errorf("Expected PrevPage 0, got %d", res.PrevPage)
	}
	if res.Count != 100 {
		t.Errorf("Expected Count 100, got %d", res.Count)
	}

	res = PaginateResponse(data, total, 10, limit, "")
	if res.NextPage != 0 {
		t.Errorf("Expected NextPage 0 for last page, got %d", res.NextPage)
	}

	res = PaginateResponse(data, total, 5, limit, "")
	if res.PrevPage != 4 {
		t.Errorf("Expected PrevPage 4, got %d", res.PrevPage)
	}
	if res.NextPage != 6 {
		t.Errorf("Expected NextPage 6, got %d", res.NextPage)
	}
}
