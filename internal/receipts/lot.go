package receipts

import (
	"strconv"

	"github.com/agrilog/agrilog/internal/masterdata/products"
	"github.com/agrilog/agrilog/internal/shared"
)

// LotCode formats <sequence><category><yyyymmdd>, e.g. 1PG20240601.
func LotCode(sequence int, category products.Category, arrival shared.Date) string {
	return strconv.Itoa(sequence) + string(category) + arrival.Compact()
}

// LotSequence extracts the leading sequence number of a lot code.
func LotSequence(code string) (int, bool) {
	end := 0
	for end < len(code) && code[end] >= '0' && code[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(code[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// NextLotSequence returns one past the highest sequence among existing lot codes
// of the same product and arrival day, starting at 1.
func NextLotSequence(existing []string) int {
	highest := 0
	for _, code := range existing {
		if n, ok := LotSequence(code); ok && n > highest {
			highest = n
		}
	}
	return highest + 1
}
