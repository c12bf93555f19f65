package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sumup/hostedpay"
)

// OrderRepository persists order snapshots and serves them to the gateway's
// return verification.
type OrderRepository interface {
	hostedpay.OrderFinder
	Create(ctx context.Context, order *hostedpay.Order) error
	FindByID(ctx context.Context, id string) (*hostedpay.Order, error)
}

type orderRepoImpl struct {
	db *gorm.DB
}

// NewOrderRepository builds an [OrderRepository] on db.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

// Create stores order with its products and sets order.ID to the new
// identifier. Existing products are updated in place.
func (r *orderRepoImpl) Create(ctx context.Context, order *hostedpay.Order) error {
	if order == nil {
		return hostedpay.ErrMissingOrder
	}
	if err := order.Validate(); err != nil {
		return fmt.Errorf("store: invalid order: %w", err)
	}
	rec := newOrderRecord(order)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range order.LineItems {
			product := newProductRecord(item.Product)
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&product).Error; err != nil {
				return err
			}
		}
		if err := tx.Omit(clause.Associations).Create(rec).Error; err != nil {
			return err
		}
		if len(rec.LineItems) == 0 {
			return nil
		}
		for i := range rec.LineItems {
			rec.LineItems[i].OrderID = rec.ID
		}
		return tx.Omit(clause.Associations).Create(&rec.LineItems).Error
	})
	if err != nil {
		return fmt.Errorf("store: create order %s: %w", order.Number, err)
	}
	order.ID = strconv.FormatUint(uint64(rec.ID), 10)
	return nil
}

// FindOrderByNumber implements [hostedpay.OrderFinder].
func (r *orderRepoImpl) FindOrderByNumber(ctx context.Context, number string) (*hostedpay.Order, error) {
	return r.first(ctx, "number = ?", number)
}

func (r *orderRepoImpl) FindByID(ctx context.Context, id string) (*hostedpay.Order, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *orderRepoImpl) first(ctx context.Context, query string, args ...any) (*hostedpay.Order, error) {
	var rec orderRecord
	err := r.db.WithContext(ctx).
		Preload("LineItems", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("LineItems.Product").
		Where(query, args...).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, hostedpay.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: find order: %w", err)
	}
	return rec.toOrder(), nil
}
