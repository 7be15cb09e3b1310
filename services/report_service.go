package services

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/wcharczuk/go-chart/v2"
	"gorm.io/gorm"

	"github.com/sushimonsters/restaurant-app/models"
	"github.com/sushimonsters/restaurant-app/utils"
)

// ReportService renders the admin exports: an order-list PDF and a revenue
// chart. Both are read-only over the store.
type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

// ExportOrdersPDF writes a PDF listing every order, newest first.
func (rps *ReportService) ExportOrdersPDF(admin models.Principal, w io.Writer) error {
	if !admin.IsAdmin {
		return models.ErrForbidden
	}

	var orders []models.Order
	if err := rps.DB.Preload("User").Preload("MenuItem").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Orders report", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s", time.Now().Format("2006-01-02 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	widths := []float64{15, 35, 55, 15, 30, 40}
	headers := []string{"ID", "User", "Item", "Qty", "Total", "Status"}
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, order := range orders {
		pdf.CellFormat(widths[0], 7, fmt.Sprintf("%d", order.ID), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[1], 7, order.User.Username, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, order.MenuItem.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 7, fmt.Sprintf("%d", order.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 7, utils.FormatCurrencyUAH(order.TotalPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 7, string(order.Status), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}

// RenderRevenueChart writes a PNG of daily revenue over completed orders.
// Needs at least two days of data, otherwise ErrNotFound.
func (rps *ReportService) RenderRevenueChart(admin models.Principal, w io.Writer) error {
	if !admin.IsAdmin {
		return models.ErrForbidden
	}

	var rows []struct {
		Day     string
		Revenue float64
	}
	err := rps.DB.Model(&models.Order{}).
		Select("DATE(created_at) as day, SUM(total_price) as revenue").
		Where("status = ?", models.StatusCompleted).
		Group("DATE(created_at)").
		Order("day asc").
		Scan(&rows).Error
	if err != nil {
		return err
	}
	if len(rows) < 2 {
		return models.ErrNotFound
	}

	var xs []time.Time
	var ys []float64
	for _, row := range rows {
		day, err := time.Parse("2006-01-02", row.Day)
		if err != nil {
			continue
		}
		xs = append(xs, day)
		ys = append(ys, row.Revenue)
	}

	graph := chart.Chart{
		Title: "Daily revenue (completed orders)",
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "revenue",
				XValues: xs,
				YValues: ys,
			},
		},
	}
	return graph.Render(chart.PNG, w)
}
