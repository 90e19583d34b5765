package database

import (
	"math"
	"path/filepath"
	"testing"

	"kinbea-inventory/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestStockValuation(t *testing.T) {
	db := newTestDB(t)

	products := []models.Product{
		{Name: "Cola", TotalQuantity: 10, PurchasePrice: 1.5, Category: "Drinks"},
		{Name: "Fanta", TotalQuantity: 5, PurchasePrice: 2.0, Category: "Drinks"},
		{Name: "Soap", TotalQuantity: 3, PurchasePrice: 4.0, Category: ""},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			t.Fatalf("seed product: %v", err)
		}
	}

	report, err := StockValuation(db)
	if err != nil {
		t.Fatalf("StockValuation failed: %v", err)
	}

	// 10*1.5 + 5*2.0 + 3*4.0
	if math.Abs(report.GrandTotal-37.0) > 1e-9 {
		t.Errorf("grand total = %v, want 37.0", report.GrandTotal)
	}
	if len(report.Categories) != 2 {
		t.Fatalf("categories = %d, want 2", len(report.Categories))
	}
	// Sorted by name: Drinks before Uncategorized.
	if report.Categories[0].Category != "Drinks" || report.Categories[1].Category != "Uncategorized" {
		t.Errorf("category order: %q, %q", report.Categories[0].Category, report.Categories[1].Category)
	}
	if math.Abs(report.Categories[0].Subtotal-25.0) > 1e-9 {
		t.Errorf("Drinks subtotal = %v, want 25.0", report.Categories[0].Subtotal)
	}
}

func TestGetSalesSummary(t *testing.T) {
	db := newTestDB(t)

	summary, err := GetSalesSummary(db)
	if err != nil {
		t.Fatalf("GetSalesSummary on empty tables failed: %v", err)
	}
	if summary.PendingAmount != 0 || summary.ReceivedAmount != 0 {
		t.Errorf("empty summary has amounts: %+v", summary)
	}

	sold := []models.SoldItem{
		{ProductName: "Cola", Price: 2.5, QuantitySold: 2, Amount: 5.0, Status: models.StatusNotReceived},
		{ProductName: "Fanta", Price: 2.0, QuantitySold: 3, Amount: 6.0, Status: models.StatusNotReceived},
	}
	for i := range sold {
		if err := db.Create(&sold[i]).Error; err != nil {
			t.Fatalf("seed sold item: %v", err)
		}
	}
	archived := models.Received{ProductName: "Soap", Price: 4.0, QuantitySold: 1, Amount: 4.0, Status: models.StatusReceived}
	if err := db.Create(&archived).Error; err != nil {
		t.Fatalf("seed received item: %v", err)
	}

	summary, err = GetSalesSummary(db)
	if err != nil {
		t.Fatalf("GetSalesSummary failed: %v", err)
	}
	if math.Abs(summary.PendingAmount-11.0) > 1e-9 || summary.PendingCount != 2 {
		t.Errorf("pending = %v/%d, want 11.0/2", summary.PendingAmount, summary.PendingCount)
	}
	if math.Abs(summary.ReceivedAmount-4.0) > 1e-9 || summary.ReceivedCount != 1 {
		t.Errorf("received = %v/%d, want 4.0/1", summary.ReceivedAmount, summary.ReceivedCount)
	}
}
