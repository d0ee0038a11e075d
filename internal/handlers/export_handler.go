package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/kuanensn/italy/internal/currency"
	apperrors "github.com/kuanensn/italy/internal/errors"
	"github.com/kuanensn/italy/internal/ledger"
)

var exportHeaders = []string{"ID", "Description", "Amount", "Currency", "Category", "Paid By", "Amount (TWD)"}

// ExportCSV streams the full ledger as a CSV file.
// @Summary     Export expenses as CSV
// @Description Download every recorded expense with base-currency amounts
// @Tags        expenses
// @Produce     text/csv
// @Param       payer query string false "Payer filter (ALL/ME/GROUP)"
// @Success     200 {file} file "CSV file"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /expenses/export/csv [get]
func (h *ExpenseHandler) ExportCSV(c *gin.Context) {
	filter, err := payerFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	expenses := ledger.FilterByPayer(h.ledger.Expenses(), filter)

	buf := new(bytes.Buffer)
	// BOM so Excel renders the CJK descriptions correctly.
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)
	if err := writer.Write(exportHeaders); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	for _, e := range expenses {
		row := []string{
			e.ID,
			e.Description,
			fmt.Sprintf("%.2f", e.Amount),
			string(e.Currency),
			string(e.Category),
			string(e.PaidBy),
			fmt.Sprintf("%.2f", currency.ToBase(e.Amount, e.Currency)),
		}
		if err := writer.Write(row); err != nil {
			respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	filename := fmt.Sprintf("expenses_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportXLSX streams the full ledger as a styled Excel workbook.
// @Summary     Export expenses as XLSX
// @Description Download every recorded expense as an Excel workbook
// @Tags        expenses
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param       payer query string false "Payer filter (ALL/ME/GROUP)"
// @Success     200 {file} file "XLSX file"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/export/xlsx [get]
func (h *ExpenseHandler) ExportXLSX(c *gin.Context) {
	filter, err := payerFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	expenses := ledger.FilterByPayer(h.ledger.Expenses(), filter)

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheetName := "Expenses"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, header)
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for r, e := range expenses {
		values := []interface{}{
			e.ID,
			e.Description,
			e.Amount,
			string(e.Currency),
			string(e.Category),
			string(e.PaidBy),
			currency.ToBase(e.Amount, e.Currency),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, r+2)
			_ = f.SetCellValue(sheetName, cell, v)
		}
	}

	_ = f.SetColWidth(sheetName, "A", "B", 30)
	_ = f.SetColWidth(sheetName, "C", "G", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	filename := fmt.Sprintf("expenses_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
