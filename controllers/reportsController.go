package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"

	"github.com/vendastock/vendaStock/database"
	"github.com/vendastock/vendaStock/models"
)

type GenerateReportRequest struct {
	ReportType string `json:"reportType" binding:"required"`
	StartDate  string `json:"startDate" binding:"required"`
	EndDate    string `json:"endDate" binding:"required"`
}

type ReportRow struct {
	Date       string
	Item       string
	Quantity   int
	Price      float64
	TotalValue float64
}

func GenerateReport(c *gin.Context) {
	caller, exists := currentCaller(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startDate, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startDate format"})
		return
	}
	endDate, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid endDate format"})
		return
	}

	rows, title, err := fetchReportData(caller.TenantID, req.ReportType, startDate, endDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	pdf, err := generatePDF(rows, title, req.ReportType, startDate, endDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render report"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s_report.pdf", req.ReportType))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func fetchReportData(tenantID uint, reportType string, startDate, endDate time.Time) ([]ReportRow, string, error) {
	var rows []ReportRow
	var title string

	switch reportType {
	case "sales":
		var sales []models.Sale
		if err := database.DB.Preload("Items").Preload("Items.Product").
			Where("tenant_id = ? AND sold_at BETWEEN ? AND ?", tenantID, startDate, endDate).
			Find(&sales).Error; err != nil {
			return nil, "", err
		}
		for _, sale := range sales {
			for _, item := range sale.Items {
				name := "(produto removido)"
				if item.Product != nil {
					name = item.Product.Name
				}
				rows = append(rows, ReportRow{
					Date:       sale.SoldAt.Format("2006-01-02"),
					Item:       name,
					Quantity:   item.Quantity,
					Price:      item.Price,
					TotalValue: float64(item.Quantity) * item.Price,
				})
			}
		}
		title = "Relatorio de Vendas"

	case "estoque":
		var products []models.Product
		if err := database.DB.
			Where("tenant_id = ?", tenantID).
			Find(&products).Error; err != nil {
			return nil, "", err
		}
		for _, product := range products {
			rows = append(rows, ReportRow{
				Item:       product.Name,
				Quantity:   product.Quantity,
				Price:      product.Price,
				TotalValue: float64(product.Quantity) * product.Price,
			})
		}
		title = "Relatorio de Estoque"

	default:
		return nil, "", fmt.Errorf("invalid report type")
	}

	return rows, title, nil
}

func generatePDF(rows []ReportRow, title, reportType string, startDate, endDate time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)

	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 12)
	if reportType == "sales" {
		pdf.CellFormat(0, 10, fmt.Sprintf("Periodo: %s a %s", startDate.Format("2006-01-02"), endDate.Format("2006-01-02")), "", 1, "L", false, 0, "")

		var totalItems int
		var totalValue float64
		for _, row := range rows {
			totalItems += row.Quantity
			totalValue += row.TotalValue
		}
		pdf.CellFormat(0, 10, fmt.Sprintf("Itens vendidos: %d", totalItems), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Total: R$ %.2f", totalValue), "", 1, "L", false, 0, "")
		pdf.Ln(5)
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(40, 10, "Data", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 10, "Produto", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 10, "Qtd", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 10, "Preco", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 10, "Total", "1", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	for _, row := range rows {
		pdf.CellFormat(40, 10, row.Date, "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 10, row.Item, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 10, fmt.Sprintf("%d", row.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 10, fmt.Sprintf("R$ %.2f", row.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 10, fmt.Sprintf("R$ %.2f", row.TotalValue), "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
