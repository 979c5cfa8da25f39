package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/contalibre-dev/contalibre/internal/model"
	"github.com/contalibre-dev/contalibre/internal/subscription"
)

// SubscriptionRepo persists plans and subscriptions in postgres.
type SubscriptionRepo struct {
	db *gorm.DB
}

// NewSubscriptionRepo creates a SubscriptionRepo.
func NewSubscriptionRepo(db *gorm.DB) *SubscriptionRepo {
	return &SubscriptionRepo{db: db}
}

// ActiveByCompany returns the company's most recent active subscription with
// its plan, or nil when there is none.
func (r *SubscriptionRepo) ActiveByCompany(ctx context.Context, companyID uint) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("company_id = ? AND status = ?", companyID, model.SubscriptionActive).
		Order("started_at DESC").
		First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading subscription for company %d: %w", companyID, err)
	}
	return &sub, nil
}

// Assign cancels any active subscription and stores the new one.
func (r *SubscriptionRepo) Assign(ctx context.Context, sub *model.Subscription) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.Subscription{}).
			Where("company_id = ? AND status = ?", sub.CompanyID, model.SubscriptionActive).
			Update("status", model.SubscriptionCancelled).Error
		if err != nil {
			return fmt.Errorf("cancelling previous subscription: %w", err)
		}
		if err := tx.Create(sub).Error; err != nil {
			return fmt.Errorf("inserting subscription: %w", err)
		}
		return nil
	})
}

// PlanByCode returns a plan by its code.
func (r *SubscriptionRepo) PlanByCode(ctx context.Context, code string) (*model.Plan, error) {
	var plan model.Plan
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&plan).Error
	if err != nil {
		return nil, fmt.Errorf("loading plan %q: %w", code, err)
	}
	return &plan, nil
}

// EnsurePlan inserts a plan unless its code already exists.
func (r *SubscriptionRepo) EnsurePlan(ctx context.Context, plan *model.Plan) error {
	err := r.db.WithContext(ctx).
		Where(model.Plan{Code: plan.Code}).
		FirstOrCreate(plan).Error
	if err != nil {
		return fmt.Errorf("ensuring plan %q: %w", plan.Code, err)
	}
	return nil
}

// ConsumeAIQuery decrements the AI query counter atomically; the guarded
// WHERE keeps two concurrent requests from double-spending the last query.
func (r *SubscriptionRepo) ConsumeAIQuery(ctx context.Context, subscriptionID uint) error {
	res := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("id = ? AND ai_queries_left > 0", subscriptionID).
		UpdateColumn("ai_queries_left", gorm.Expr("ai_queries_left - 1"))
	if res.Error != nil {
		return fmt.Errorf("consuming ai query: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return subscription.ErrQuotaExhausted
	}
	return nil
}
