package database

import (
	"sort"

	"kinbea-inventory/internal/models"

	"gorm.io/gorm"
)

// ValuationItem is one product row in the stock valuation report.
type ValuationItem struct {
	Name          string  `json:"name"`
	Quantity      int     `json:"quantity"`
	PurchasePrice float64 `json:"purchase_price"`
	TotalCost     float64 `json:"total_cost"`
}

// CategoryValuation groups valuation rows under one category.
type CategoryValuation struct {
	Category string          `json:"category"`
	Items    []ValuationItem `json:"items"`
	Subtotal float64         `json:"subtotal"`
}

// ValuationReport is the full stock valuation payload.
type ValuationReport struct {
	Categories []CategoryValuation `json:"categories"`
	GrandTotal float64             `json:"grand_total"`
}

// StockValuation prices the physical inventory at purchase cost, grouped
// by category.
func StockValuation(db *gorm.DB) (*ValuationReport, error) {
	var products []models.Product
	if err := db.Find(&products).Error; err != nil {
		return nil, err
	}

	grouped := make(map[string]*CategoryValuation)
	report := &ValuationReport{}

	for _, p := range products {
		cat := p.Category
		if cat == "" {
			cat = "Uncategorized"
		}
		group, ok := grouped[cat]
		if !ok {
			group = &CategoryValuation{Category: cat}
			grouped[cat] = group
		}

		itemTotal := float64(p.TotalQuantity) * p.PurchasePrice
		group.Items = append(group.Items, ValuationItem{
			Name:          p.Name,
			Quantity:      p.TotalQuantity,
			PurchasePrice: p.PurchasePrice,
			TotalCost:     itemTotal,
		})
		group.Subtotal += itemTotal
		report.GrandTotal += itemTotal
	}

	for _, group := range grouped {
		report.Categories = append(report.Categories, *group)
	}
	sort.Slice(report.Categories, func(i, j int) bool {
		return report.Categories[i].Category < report.Categories[j].Category
	})

	return report, nil
}

// SalesSummary totals the sold and received tables: revenue still pending
// receipt versus revenue already received.
type SalesSummary struct {
	PendingAmount  float64 `json:"pending_amount"`
	PendingCount   int64   `json:"pending_count"`
	ReceivedAmount float64 `json:"received_amount"`
	ReceivedCount  int64   `json:"received_count"`
}

// GetSalesSummary computes the summary with store-side aggregates.
// COALESCE ensures we get 0 instead of NULL on empty tables.
func GetSalesSummary(db *gorm.DB) (*SalesSummary, error) {
	var s SalesSummary

	err := db.Model(&models.SoldItem{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&s.PendingAmount).Error
	if err != nil {
		return nil, err
	}
	if err := db.Model(&models.SoldItem{}).Count(&s.PendingCount).Error; err != nil {
		return nil, err
	}

	err = db.Model(&models.Received{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&s.ReceivedAmount).Error
	if err != nil {
		return nil, err
	}
	if err := db.Model(&models.Received{}).Count(&s.ReceivedCount).Error; err != nil {
		return nil, err
	}

	return &s, nil
}
