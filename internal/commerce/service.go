package commerce

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Elin23/LearnifyCourses/internal/catalog"
)

var (
	ErrUnknownCourse = errors.New("unknown course")
	ErrEmptyCart     = errors.New("cart is empty")
)

// defaultPurchasedIDs is the first-run demo data a user sees before their
// first checkout. Once any purchase is recorded the stored set wins.
var defaultPurchasedIDs = []string{"c-fe-02", "c-ux-01"}

const defaultCurrency = "USD"

type Service struct {
	Store   Store
	Catalog *CatalogClient
	Events  *Broker
	Log     *zap.Logger

	// ProcessingDelay stands in for the payment gateway round-trip.
	ProcessingDelay time.Duration
}

type CartRow struct {
	Item      CartItem       `json:"item"`
	Course    catalog.Course `json:"course"`
	LineTotal int64          `json:"line_total"`
}

type CartView struct {
	Rows      []CartRow `json:"rows"`
	ItemCount int       `json:"item_count"`
	Subtotal  int64     `json:"subtotal"`
	Currency  string    `json:"currency"`
}

// AddToCart inserts the course or bumps its quantity. The id must resolve
// in the catalog; the rest of the system ignores quantities beyond 1.
func (s *Service) AddToCart(ctx context.Context, userID, courseID string) error {
	byID, err := s.Catalog.CoursesByID(ctx)
	if err != nil {
		return err
	}
	if _, ok := byID[courseID]; !ok {
		return ErrUnknownCourse
	}

	items, err := s.Store.CartRead(ctx, userID)
	if err != nil {
		return err
	}

	found := false
	for i := range items {
		if items[i].CourseID == courseID {
			items[i].Qty++
			found = true
			break
		}
	}
	if !found {
		items = append(items, CartItem{CourseID: courseID, Qty: 1})
	}

	if err := s.Store.CartWrite(ctx, userID, items); err != nil {
		return err
	}
	s.publishCart(userID, courseID, items)
	return nil
}

func (s *Service) RemoveFromCart(ctx context.Context, userID, courseID string) error {
	items, err := s.Store.CartRead(ctx, userID)
	if err != nil {
		return err
	}

	next := items[:0]
	for _, it := range items {
		if it.CourseID != courseID {
			next = append(next, it)
		}
	}

	if err := s.Store.CartWrite(ctx, userID, next); err != nil {
		return err
	}
	s.publishCart(userID, courseID, next)
	return nil
}

func (s *Service) ClearCart(ctx context.Context, userID string) error {
	if err := s.Store.CartWrite(ctx, userID, nil); err != nil {
		return err
	}
	s.publishCart(userID, "", nil)
	return nil
}

// CartItems returns the persisted entries without touching the catalog.
func (s *Service) CartItems(ctx context.Context, userID string) ([]CartItem, error) {
	return s.Store.CartRead(ctx, userID)
}

// CartView joins the cart with live catalog data. Entries whose course no
// longer exists are dropped from the view but left in storage.
func (s *Service) CartView(ctx context.Context, userID string) (CartView, error) {
	items, err := s.Store.CartRead(ctx, userID)
	if err != nil {
		return CartView{}, err
	}

	byID, err := s.Catalog.CoursesByID(ctx)
	if err != nil {
		return CartView{}, err
	}

	view := CartView{Rows: []CartRow{}, Currency: defaultCurrency}
	for _, it := range items {
		course, ok := byID[it.CourseID]
		if !ok {
			continue
		}

		line := course.Pricing.NewPrice * int64(it.Qty)
		view.Rows = append(view.Rows, CartRow{Item: it, Course: course, LineTotal: line})
		view.ItemCount += it.Qty
		view.Subtotal += line
	}

	if len(view.Rows) > 0 {
		view.Currency = view.Rows[0].Course.Pricing.Currency
	}
	return view, nil
}

// PurchasedIDs lists the owned course ids, substituting the demo seed when
// the user has never checked out.
func (s *Service) PurchasedIDs(ctx context.Context, userID string) ([]string, error) {
	ids, ok, err := s.Store.PurchasedRead(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return append([]string(nil), defaultPurchasedIDs...), nil
	}
	return ids, nil
}

func (s *Service) IsPurchased(ctx context.Context, userID, courseID string) (bool, error) {
	ids, err := s.PurchasedIDs(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == courseID {
			return true, nil
		}
	}
	return false, nil
}

// recordPurchases unions the ids into the owned set. Nothing ever removes
// an id from it.
func (s *Service) recordPurchases(ctx context.Context, userID string, courseIDs []string) error {
	current, err := s.PurchasedIDs(ctx, userID)
	if err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(current))
	for _, id := range current {
		seen[id] = struct{}{}
	}
	for _, id := range courseIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		current = append(current, id)
	}

	if err := s.Store.PurchasedWrite(ctx, userID, current); err != nil {
		return err
	}

	if s.Events != nil {
		s.Events.Publish(Event{Kind: EventPurchasesRecorded, UserID: userID, ItemCount: -1})
	}
	return nil
}

func (s *Service) publishCart(userID, courseID string, items []CartItem) {
	if s.Events == nil {
		return
	}

	count := 0
	for _, it := range items {
		count += it.Qty
	}
	s.Events.Publish(Event{
		Kind:      EventCartChanged,
		UserID:    userID,
		CourseID:  courseID,
		ItemCount: count,
	})
}

func (s *Service) logError(msg string, err error, fields ...zap.Field) {
	if s.Log != nil {
		s.Log.Error(msg, append(fields, zap.Error(err))...)
	}
}
