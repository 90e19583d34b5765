// Package inventory implements the shop's workflow rules: how product
// counters move on sale, restock and price edits, and how sale records
// travel from "Not received" to the received archive.
package inventory

import (
	"context"
	"errors"

	"kinbea-inventory/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnpriced      = errors.New("product has no selling price")
	ErrDuplicateName = errors.New("product name already in use")
)

// Engine owns every inventory mutation. Handlers never touch product
// counters directly.
type Engine struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewEngine(db *gorm.DB, log *logrus.Logger) *Engine {
	return &Engine{db: db, log: log}
}

// AddProductInput carries the add-product form fields. SellingPrice is
// optional; a product added without one stays unpriced until a price edit
// or restock.
type AddProductInput struct {
	Name          string
	Quantity      int
	PurchasePrice float64
	SellingPrice  *float64
	Category      string
	GroupName     string
}

// AddProduct creates a product with fresh counters.
func (e *Engine) AddProduct(ctx context.Context, in AddProductInput) (*models.Product, error) {
	if in.Name == "" || in.Quantity <= 0 || in.PurchasePrice < 0 {
		return nil, ErrInvalidInput
	}
	if in.SellingPrice != nil && *in.SellingPrice <= 0 {
		return nil, ErrInvalidInput
	}

	var existing models.Product
	err := e.db.WithContext(ctx).Where("name = ?", in.Name).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateName
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	product := models.Product{
		Name:          in.Name,
		TotalQuantity: in.Quantity,
		PurchasePrice: in.PurchasePrice,
		SellingPrice:  in.SellingPrice,
		Category:      in.Category,
		GroupName:     in.GroupName,
		QuantitySold:  0,
		QuantityLeft:  in.Quantity,
		AmountSold:    0,
	}
	if in.SellingPrice != nil {
		product.TotalAmount = *in.SellingPrice * float64(in.Quantity)
	}

	if err := e.db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// RecordSale appends a sale record at the product's current selling price
// and advances the product's counters. The sale record keeps the quantity
// that was requested; the product's QuantitySold is clamped to
// TotalQuantity, so stock can never go negative. Both writes happen in one
// transaction with the product row locked.
func (e *Engine) RecordSale(ctx context.Context, productID uint, quantity int) (*models.Product, *models.SoldItem, error) {
	if quantity <= 0 {
		return nil, nil, ErrInvalidInput
	}

	var product models.Product
	var sold models.SoldItem

	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if product.SellingPrice == nil {
			return ErrUnpriced
		}
		price := *product.SellingPrice

		sold = models.SoldItem{
			ProductID:    product.ID,
			ProductName:  product.Name,
			Price:        price,
			QuantitySold: quantity,
			Amount:       price * float64(quantity),
			Status:       models.StatusNotReceived,
		}
		if err := tx.Create(&sold).Error; err != nil {
			return err
		}

		newSold := product.QuantitySold + quantity
		if newSold > product.TotalQuantity {
			e.log.WithFields(logrus.Fields{
				"product":   product.Name,
				"requested": quantity,
				"in_stock":  product.TotalQuantity - product.QuantitySold,
			}).Info("sale clamped to remaining stock")
			newSold = product.TotalQuantity
		}
		product.QuantitySold = newSold
		product.QuantityLeft = product.TotalQuantity - newSold
		product.AmountSold = float64(newSold) * price

		return tx.Save(&product).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return &product, &sold, nil
}

// Restock resets a product as if newly stocked: fresh quantity, fresh
// prices, sale counters back to zero. Prior sale history survives only in
// the sold/received tables.
func (e *Engine) Restock(ctx context.Context, productID uint, quantity int, purchasePrice, sellingPrice float64) (*models.Product, error) {
	if quantity <= 0 || purchasePrice < 0 || sellingPrice <= 0 {
		return nil, ErrInvalidInput
	}

	var product models.Product
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		product.TotalQuantity = quantity
		product.QuantityLeft = quantity
		product.QuantitySold = 0
		product.AmountSold = 0
		product.PurchasePrice = purchasePrice
		product.SellingPrice = &sellingPrice
		product.TotalAmount = float64(quantity) * sellingPrice

		return tx.Save(&product).Error
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// EditPrice overwrites the price fields only and recomputes TotalAmount.
// QuantitySold and AmountSold are left as they are; they catch up on the
// next sale. This is also how an unpriced product acquires a price.
func (e *Engine) EditPrice(ctx context.Context, productID uint, purchasePrice, sellingPrice float64) (*models.Product, error) {
	if purchasePrice < 0 || sellingPrice <= 0 {
		return nil, ErrInvalidInput
	}

	var product models.Product
	if err := e.db.WithContext(ctx).First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	product.PurchasePrice = purchasePrice
	product.SellingPrice = &sellingPrice
	product.TotalAmount = sellingPrice * float64(product.TotalQuantity)

	if err := e.db.WithContext(ctx).Save(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// MarkReceived flips a single sale record to "Received" in place, without
// moving it to the archive.
func (e *Engine) MarkReceived(ctx context.Context, soldItemID uint) (*models.SoldItem, error) {
	var item models.SoldItem
	if err := e.db.WithContext(ctx).First(&item, soldItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	item.Status = models.StatusReceived
	if err := e.db.WithContext(ctx).Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ReceiveAll migrates every sale record, whatever its status, into the
// received archive and empties the sold table. The whole migration is one
// transaction: either every row moves or none does.
func (e *Engine) ReceiveAll(ctx context.Context) (int, error) {
	var migrated int

	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var items []models.SoldItem
		if err := tx.Find(&items).Error; err != nil {
			return err
		}

		for _, item := range items {
			archived := models.Received{
				ProductID:    item.ProductID,
				ProductName:  item.ProductName,
				Price:        item.Price,
				QuantitySold: item.QuantitySold,
				Amount:       item.Amount,
				Status:       models.StatusReceived,
			}
			if err := tx.Create(&archived).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.SoldItem{}, item.ID).Error; err != nil {
				return err
			}
		}

		migrated = len(items)
		return nil
	})
	if err != nil {
		return 0, err
	}

	e.log.WithField("count", migrated).Info("migrated sale records to received")
	return migrated, nil
}

// FilterAll is the sentinel meaning "no filter" on category/group scans.
const FilterAll = "All"

// ListProducts returns products newest-first, optionally filtered by
// category and group. Empty or "All" skips that filter.
func (e *Engine) ListProducts(ctx context.Context, category, group string) ([]models.Product, error) {
	q := e.db.WithContext(ctx).Order("id desc")
	if category != "" && category != FilterAll {
		q = q.Where("category = ?", category)
	}
	if group != "" && group != FilterAll {
		q = q.Where("group_name = ?", group)
	}

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListUnpriced returns products still waiting for a selling price.
func (e *Engine) ListUnpriced(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := e.db.WithContext(ctx).
		Where("selling_price IS NULL").
		Order("id desc").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct looks up one product by id.
func (e *Engine) GetProduct(ctx context.Context, productID uint) (*models.Product, error) {
	var product models.Product
	if err := e.db.WithContext(ctx).First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// ListSold returns sale records newest-first with the page total
// (price x quantity summed over all rows).
func (e *Engine) ListSold(ctx context.Context) ([]models.SoldItem, float64, error) {
	var items []models.SoldItem
	if err := e.db.WithContext(ctx).Order("id desc").Find(&items).Error; err != nil {
		return nil, 0, err
	}

	var total float64
	for _, item := range items {
		total += item.Price * float64(item.QuantitySold)
	}
	return items, total, nil
}

// ListReceived returns archive rows newest-first with their total.
func (e *Engine) ListReceived(ctx context.Context) ([]models.Received, float64, error) {
	var items []models.Received
	if err := e.db.WithContext(ctx).Order("id desc").Find(&items).Error; err != nil {
		return nil, 0, err
	}

	var total float64
	for _, item := range items {
		total += item.Price * float64(item.QuantitySold)
	}
	return items, total, nil
}

// DeleteProduct removes a product. Its sale history stays behind under the
// snapshot name.
func (e *Engine) DeleteProduct(ctx context.Context, productID uint) error {
	return deleteByID(e.db.WithContext(ctx), &models.Product{}, productID)
}

// DeleteSoldItem removes a single sale record.
func (e *Engine) DeleteSoldItem(ctx context.Context, soldItemID uint) error {
	return deleteByID(e.db.WithContext(ctx), &models.SoldItem{}, soldItemID)
}

// DeleteReceived removes a single archive row.
func (e *Engine) DeleteReceived(ctx context.Context, receivedID uint) error {
	return deleteByID(e.db.WithContext(ctx), &models.Received{}, receivedID)
}

func deleteByID(db *gorm.DB, model interface{}, id uint) error {
	res := db.Delete(model, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
