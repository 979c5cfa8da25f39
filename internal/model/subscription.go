package model

import "time"

// SubscriptionStatus is the lifecycle state of a subscription.
type SubscriptionStatus string

// Expiry is derived from ExpiresAt at read time; rows keep their last
// assigned status.
const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// Plan describes what a subscription tier allows. A nil AIQueries means
// unlimited AI report queries.
type Plan struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Code      string `gorm:"type:varchar(32);uniqueIndex;not null" json:"code"`
	Name      string `gorm:"type:varchar(100);not null" json:"name"`
	AIQueries *int   `json:"ai_queries"`
}

// TableName maps Plan to the plans table.
func (Plan) TableName() string {
	return "plans"
}

// Subscription ties a company to a plan. AIQueriesLeft counts down from the
// plan quota; nil mirrors an unlimited plan.
type Subscription struct {
	ID            uint               `gorm:"primaryKey;autoIncrement" json:"id"`
	CompanyID     uint               `gorm:"not null;index" json:"company_id"`
	PlanID        uint               `gorm:"not null" json:"plan_id"`
	Status        SubscriptionStatus `gorm:"type:varchar(16);not null;default:'active'" json:"status"`
	StartedAt     time.Time          `gorm:"type:date;not null" json:"started_at"`
	ExpiresAt     *time.Time         `gorm:"type:date" json:"expires_at"`
	AIQueriesLeft *int               `json:"ai_queries_left"`

	Plan Plan `gorm:"foreignKey:PlanID" json:"plan"`
}

// TableName maps Subscription to the subscriptions table.
func (Subscription) TableName() string {
	return "subscriptions"
}
