package commerce

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// The checkout flow is a linear machine:
//
//	Idle -> Validating -> Processing -> Succeeded | Failed
//
// Validation failures return to Idle with per-field messages. Failed is
// reached only when persisting the result breaks; there is no simulated
// payment decline.
type CheckoutState string

const (
	StateIdle       CheckoutState = "idle"
	StateValidating CheckoutState = "validating"
	StateProcessing CheckoutState = "processing"
	StateSucceeded  CheckoutState = "succeeded"
	StateFailed     CheckoutState = "failed"
)

const defaultProcessingDelay = 700 * time.Millisecond

type CheckoutForm struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
	CVC        string `json:"cvc"`
}

type Receipt struct {
	OrderID    string   `json:"order_id"`
	CourseIDs  []string `json:"course_ids"`
	Total      int64    `json:"total"`
	Currency   string   `json:"currency"`
	RedirectTo string   `json:"redirect_to"`
}

type CheckoutResult struct {
	State       CheckoutState     `json:"state"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
	Receipt     *Receipt          `json:"receipt,omitempty"`
}

var (
	checkoutEmailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	expiryRe        = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvcRe           = regexp.MustCompile(`^\d{3,4}$`)
	digitsOnlyRe    = regexp.MustCompile(`^\d+$`)
)

// ValidateCheckoutForm checks the payment form fields. This is deliberately
// shallow: no Luhn check, no issuer lookup, no real gateway.
func ValidateCheckoutForm(f CheckoutForm) map[string]string {
	fields := map[string]string{}

	if len(strings.TrimSpace(f.FullName)) < 3 {
		fields["full_name"] = "full name must be at least 3 characters"
	}
	if !checkoutEmailRe.MatchString(strings.TrimSpace(f.Email)) {
		fields["email"] = "invalid email address"
	}

	card := stripCardSeparators(f.CardNumber)
	if len(card) != 16 || !digitsOnlyRe.MatchString(card) {
		fields["card_number"] = "card number must be 16 digits"
	}
	if !expiryRe.MatchString(strings.TrimSpace(f.Expiry)) {
		fields["expiry"] = "expiry must be MM/YY"
	}
	if !cvcRe.MatchString(strings.TrimSpace(f.CVC)) {
		fields["cvc"] = "cvc must be 3 or 4 digits"
	}

	return fields
}

func stripCardSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, s)
}

// Checkout runs the flow for the user's current cart. On success the cart
// ids are unioned into the purchased set and the cart is emptied; the two
// writes are sequenced within this call, so the caller observes them
// together. Cancelling ctx during the processing wait abandons the flow
// with no side effects.
func (s *Service) Checkout(ctx context.Context, userID string, form CheckoutForm) (CheckoutResult, error) {
	view, err := s.CartView(ctx, userID)
	if err != nil {
		return CheckoutResult{State: StateIdle}, err
	}
	if len(view.Rows) == 0 {
		return CheckoutResult{State: StateIdle}, ErrEmptyCart
	}

	// Idle -> Validating
	if fields := ValidateCheckoutForm(form); len(fields) > 0 {
		return CheckoutResult{State: StateIdle, FieldErrors: fields}, nil
	}

	// Validating -> Processing
	delay := s.ProcessingDelay
	if delay <= 0 {
		delay = defaultProcessingDelay
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return CheckoutResult{State: StateIdle}, ctx.Err()
	case <-timer.C:
	}

	courseIDs := make([]string, 0, len(view.Rows))
	for _, row := range view.Rows {
		courseIDs = append(courseIDs, row.Item.CourseID)
	}

	if err := s.recordPurchases(ctx, userID, courseIDs); err != nil {
		s.logError("record purchases failed", err, zap.String("user_id", userID))
		return CheckoutResult{State: StateFailed}, err
	}
	if err := s.ClearCart(ctx, userID); err != nil {
		s.logError("clear cart failed", err, zap.String("user_id", userID))
		return CheckoutResult{State: StateFailed}, err
	}

	// Processing -> Succeeded
	return CheckoutResult{
		State: StateSucceeded,
		Receipt: &Receipt{
			OrderID:    "o_" + uuid.NewString(),
			CourseIDs:  courseIDs,
			Total:      view.Subtotal,
			Currency:   view.Currency,
			RedirectTo: "/my-courses",
		},
	}, nil
}
