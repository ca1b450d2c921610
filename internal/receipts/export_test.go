package receipts

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrilog/agrilog/internal/masterdata/products"
	"github.com/agrilog/agrilog/internal/shared"
)

func TestBuildWorkbook(t *testing.T) {
	day, err := shared.ParseDate("2024-06-01")
	require.NoError(t, err)

	receipts := []GoodsReceipt{
		{
			ID:                 uuid.New(),
			ArrivalDate:        day,
			LotCode:            "1PG20240601",
			Supplier:           &SupplierRef{LegalName: "Frutta Sud srl"},
			Product:            &ProductRef{Category: products.CategoryYellowPeach, Variety: "Royal Summer"},
			Quality:            QualityFirst,
			Packaging:          PackagingBins,
			PackageCount:       10,
			GrossWeightKg:      500,
			NetWeightKg:        200,
			ShrinkagePct:       ptr(5),
			MarketableWeightKg: 190,
			PricePerKg:         1.2,
			TotalPrice:         228,
			Organic:            true,
			CreatedAt:          time.Now(),
		},
		{
			ID:                 uuid.New(),
			ArrivalDate:        day,
			LotCode:            "2PG20240601",
			Quality:            QualitySecond,
			Packaging:          PackagingCassette,
			PackageCount:       4,
			GrossWeightKg:      56,
			NetWeightKg:        50,
			MarketableWeightKg: 50,
			PricePerKg:         1,
			TotalPrice:         50,
		},
	}

	f, err := BuildWorkbook(receipts)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, exportHeaders, rows[0])
	assert.Equal(t, "Frutta Sud srl", rows[1][3])
	assert.Equal(t, "Royal Summer", rows[1][5])
	assert.Equal(t, "Sì", rows[1][17])
	// Dangling references export as empty cells.
	assert.Equal(t, "", rows[2][3])

	total, err := f.GetCellValue(exportSheet, "O4")
	require.NoError(t, err)
	assert.Equal(t, "278", total)
}
