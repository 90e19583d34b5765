package models

import (
	"time"
)

// User roles. Every authenticated user can run the inventory workflow;
// user administration and reports are restricted to RoleAdmin.
const (
	RoleAdmin = "Admin"
	RoleSales = "Sales Personnel"
)

// SoldItem status values. "Not received" is the initial state; "Received"
// is terminal.
const (
	StatusNotReceived = "Not received"
	StatusReceived    = "Received"
)

// User - a shop account (admin or sales personnel)
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:50" json:"name"`
	Username     string    `gorm:"uniqueIndex;size:50" json:"username"`
	PasswordHash string    `json:"-"` // Never return this in JSON
	Role         string    `gorm:"size:50" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Product - one inventory line with its running sale counters.
// QuantityLeft, AmountSold and TotalAmount are derived and recomputed by
// the workflow engine on every mutation:
//
//	QuantityLeft = TotalQuantity - QuantitySold
//	AmountSold   = QuantitySold * SellingPrice
//	TotalAmount  = TotalQuantity * SellingPrice
type Product struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"uniqueIndex;size:100" json:"name"`
	TotalQuantity int       `json:"total_quantity"`
	PurchasePrice float64   `json:"purchase_price"`
	SellingPrice  *float64  `json:"selling_price"` // nil until the product is priced
	Category      string    `gorm:"size:50" json:"category"`
	GroupName     string    `gorm:"size:50" json:"group_name"`
	QuantitySold  int       `json:"quantity_sold"`
	QuantityLeft  int       `json:"quantity_left"`
	AmountSold    float64   `json:"amount_sold"`
	TotalAmount   float64   `json:"total_amount"`
	CreatedAt     time.Time `json:"created_at"`
}

// SoldItem - one sale event, awaiting receipt of payment.
// ProductName is a snapshot taken at sale time; renaming or deleting the
// product does not rewrite history.
type SoldItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProductID    uint      `gorm:"index" json:"product_id"`
	ProductName  string    `gorm:"size:100" json:"product_name"`
	Price        float64   `json:"price"` // unit selling price at sale time
	QuantitySold int       `json:"quantity_sold"`
	Amount       float64   `json:"amount"` // Price * QuantitySold
	Status       string    `gorm:"size:40" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// Received - archive row produced by the bulk receive migration.
// Same shape as SoldItem; Status is always "Received".
type Received struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProductID    uint      `gorm:"index" json:"product_id"`
	ProductName  string    `gorm:"size:100" json:"product_name"`
	Price        float64   `json:"price"`
	QuantitySold int       `json:"quantity_sold"`
	Amount       float64   `json:"amount"`
	Status       string    `gorm:"size:40" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
