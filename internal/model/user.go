package model

// Subscription plans for end users.
const (
	PlanStandard = "Standard"
	PlanUpgraded = "Upgraded"
)

// User is an end-user profile on the game platform. The three billing fields
// are sensitive: the access policy strips them from single-record responses
// unless the requesting admin is a super admin.
type User struct {
	ID                  string  `json:"id" db:"id"`
	Email               string  `json:"email" db:"email"`
	Username            string  `json:"username" db:"username"`
	FullName            string  `json:"full_name" db:"full_name"`
	Plan                string  `json:"plan" db:"plan"`
	Status              string  `json:"status" db:"status"`
	Avatar              *string `json:"avatar,omitempty" db:"avatar"`
	Bio                 *string `json:"bio,omitempty" db:"bio"`
	Age                 *int    `json:"age,omitempty" db:"age"`
	School              *string `json:"school,omitempty" db:"school"`
	Grade               *string `json:"grade,omitempty" db:"grade"`
	TotalGamesPlayed    int     `json:"total_games_played" db:"total_games_played"`
	TotalScore          int     `json:"total_score" db:"total_score"`
	JoinedDate          string  `json:"joined_date" db:"joined_date"`
	LastLogin           *string `json:"last_login,omitempty" db:"last_login"`
	SubscriptionExpires *string `json:"subscription_expires,omitempty" db:"subscription_expires"`
	CreditCardLast4     *string `json:"credit_card_last4,omitempty" db:"credit_card_last4"`
	CreditCardType      *string `json:"credit_card_type,omitempty" db:"credit_card_type"`
	BillingAddress      *string `json:"billing_address,omitempty" db:"billing_address"`
}

// UserCreate is the payload for creating a user profile.
type UserCreate struct {
	Email    string  `json:"email"`
	Username string  `json:"username"`
	FullName string  `json:"full_name"`
	Plan     string  `json:"plan"`
	Avatar   *string `json:"avatar"`
	Bio      *string `json:"bio"`
	Age      *int    `json:"age"`
	School   *string `json:"school"`
	Grade    *string `json:"grade"`
}

// UserUpdate is the partial-update payload for a user profile. Nil fields are
// left unchanged.
type UserUpdate struct {
	Email               *string `json:"email"`
	Username            *string `json:"username"`
	FullName            *string `json:"full_name"`
	Plan                *string `json:"plan"`
	Status              *string `json:"status"`
	Avatar              *string `json:"avatar"`
	Bio                 *string `json:"bio"`
	Age                 *int    `json:"age"`
	School              *string `json:"school"`
	Grade               *string `json:"grade"`
	TotalGamesPlayed    *int    `json:"total_games_played"`
	TotalScore          *int    `json:"total_score"`
	SubscriptionExpires *string `json:"subscription_expires"`
	CreditCardLast4     *string `json:"credit_card_last4"`
	CreditCardType      *string `json:"credit_card_type"`
	BillingAddress      *string `json:"billing_address"`
}
