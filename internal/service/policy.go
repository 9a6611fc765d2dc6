package service

import "github.com/eduplay/console/internal/model"

// RedactUser strips the billing fields (credit_card_last4, credit_card_type,
// billing_address) from a user record unless the requesting admin holds the
// super_admin role. It is a pure function: the input record is not modified.
//
// A nil requester is treated as non-super-admin, so a stale token whose
// subject no longer resolves to an admin row never widens access.
func RedactUser(user model.User, requester *model.Admin) model.User {
	if requester != nil && requester.IsSuperAdmin() {
		return user
	}
	user.CreditCardLast4 = nil
	user.CreditCardType = nil
	user.BillingAddress = nil
	return user
}
