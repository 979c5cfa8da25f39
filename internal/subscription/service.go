package subscription

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/contalibre-dev/contalibre/internal/model"
	"github.com/contalibre-dev/contalibre/internal/tenant"
)

var (
	// ErrNoActiveSubscription is returned when a gated feature is hit
	// without an active, unexpired subscription.
	ErrNoActiveSubscription = errors.New("no active subscription")
	// ErrQuotaExhausted is returned when the plan's AI query quota ran out.
	ErrQuotaExhausted = errors.New("ai query quota exhausted")
)

// Repository persists plans and subscriptions. ConsumeAIQuery decrements the
// counter atomically and reports ErrQuotaExhausted when it is already zero.
type Repository interface {
	ActiveByCompany(ctx context.Context, companyID uint) (*model.Subscription, error)
	Assign(ctx context.Context, sub *model.Subscription) error
	PlanByCode(ctx context.Context, code string) (*model.Plan, error)
	ConsumeAIQuery(ctx context.Context, subscriptionID uint) error
}

// Service gates premium features on subscription state. Payment handling is
// out of scope; plans are assigned directly.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a subscription Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// RequireActive returns the company's active subscription, or
// ErrNoActiveSubscription when there is none or it expired.
func (s *Service) RequireActive(ctx context.Context, tc tenant.Context) (*model.Subscription, error) {
	sub, err := s.repo.ActiveByCompany(ctx, tc.CompanyID)
	if err != nil {
		return nil, err
	}
	if sub == nil || sub.Status != model.SubscriptionActive {
		return nil, ErrNoActiveSubscription
	}
	if sub.ExpiresAt != nil && sub.ExpiresAt.Before(s.now()) {
		return nil, ErrNoActiveSubscription
	}
	return sub, nil
}

// ConsumeAIQuery checks the active subscription and burns one AI report
// query. A nil quota means the plan is unlimited and nothing is decremented.
func (s *Service) ConsumeAIQuery(ctx context.Context, tc tenant.Context) error {
	sub, err := s.RequireActive(ctx, tc)
	if err != nil {
		return err
	}
	if sub.AIQueriesLeft == nil {
		return nil
	}
	if *sub.AIQueriesLeft <= 0 {
		return ErrQuotaExhausted
	}
	return s.repo.ConsumeAIQuery(ctx, sub.ID)
}

// Subscribe puts a company on a plan, seeding the AI query counter from the
// plan quota.
func (s *Service) Subscribe(ctx context.Context, tc tenant.Context, planCode string, months int) (*model.Subscription, error) {
	plan, err := s.repo.PlanByCode(ctx, planCode)
	if err != nil {
		return nil, fmt.Errorf("looking up plan %q: %w", planCode, err)
	}

	started := s.now()
	sub := &model.Subscription{
		CompanyID: tc.CompanyID,
		PlanID:    plan.ID,
		Status:    model.SubscriptionActive,
		StartedAt: started,
	}
	if months > 0 {
		expires := started.AddDate(0, months, 0)
		sub.ExpiresAt = &expires
	}
	if plan.AIQueries != nil {
		left := *plan.AIQueries
		sub.AIQueriesLeft = &left
	}

	if err := s.repo.Assign(ctx, sub); err != nil {
		return nil, fmt.Errorf("assigning subscription: %w", err)
	}
	sub.Plan = *plan
	return sub, nil
}
