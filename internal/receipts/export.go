package receipts

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Conferimenti"

var exportHeaders = []string{
	"Data arrivo", "Ora", "Lotto", "Fornitore", "Categoria", "Varietà", "Qualità",
	"Imballo", "Colli", "Lordo kg", "Netto kg", "Calo %", "Commerciabile kg",
	"Prezzo €/kg", "Totale €", "Documento", "Data documento", "Bio", "Note",
}

// BuildWorkbook renders receipts as an XLSX workbook with a totals row.
// Dangling supplier or product references are left blank.
func BuildWorkbook(receipts []GoodsReceipt) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		_ = f.Close()
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E2EFDA"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	for i, h := range exportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		_ = f.SetCellValue(exportSheet, cell, h)
		_ = f.SetCellStyle(exportSheet, cell, cell, headerStyle)
	}

	var marketable, total float64
	for i, r := range receipts {
		values := []any{
			r.ArrivalDate.String(), r.ArrivalTime, r.LotCode, "", "", "", string(r.Quality),
			string(r.Packaging), r.PackageCount, r.GrossWeightKg, r.NetWeightKg, nil, r.MarketableWeightKg,
			r.PricePerKg, r.TotalPrice, r.DocumentNumber, "", yesNo(r.Organic), r.Notes,
		}
		if r.Supplier != nil {
			values[3] = r.Supplier.LegalName
		}
		if r.Product != nil {
			values[4] = string(r.Product.Category)
			values[5] = r.Product.Variety
		}
		if r.ShrinkagePct != nil {
			values[11] = *r.ShrinkagePct
		}
		if r.DocumentDate != nil {
			values[16] = r.DocumentDate.String()
		}
		if err := f.SetSheetRow(exportSheet, fmt.Sprintf("A%d", i+2), &values); err != nil {
			_ = f.Close()
			return nil, err
		}
		marketable += r.MarketableWeightKg
		total += r.TotalPrice
	}

	summaryRow := len(receipts) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	_ = f.SetCellValue(exportSheet, fmt.Sprintf("A%d", summaryRow), "Totale")
	_ = f.SetCellValue(exportSheet, fmt.Sprintf("C%d", summaryRow), fmt.Sprintf("%d conferimenti", len(receipts)))
	_ = f.SetCellValue(exportSheet, fmt.Sprintf("M%d", summaryRow), marketable)
	_ = f.SetCellValue(exportSheet, fmt.Sprintf("O%d", summaryRow), total)
	_ = f.SetCellStyle(exportSheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("S%d", summaryRow), summaryStyle)

	widths := []float64{12, 7, 14, 28, 9, 18, 8, 9, 7, 10, 10, 8, 14, 11, 11, 12, 14, 5, 30}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(exportSheet, col, col, w)
	}
	return f, nil
}

func yesNo(b bool) string {
	if b {
		return "Sì"
	}
	return "No"
}
