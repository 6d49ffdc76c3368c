package commerce_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Elin23/LearnifyCourses/internal/catalog"
	"github.com/Elin23/LearnifyCourses/internal/commerce"
)

func newCatalogTS(t *testing.T) *httptest.Server {
	t.Helper()

	s := &catalog.Server{Store: catalog.NewStore(), Log: zap.NewNop()}
	h := catalog.NewHandler(s, catalog.HTTPDeps{Log: zap.NewNop(), Service: "catalog"})
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func newService(t *testing.T) (*commerce.Service, *commerce.MemStore) {
	t.Helper()

	store := commerce.NewMemStore()
	svc := &commerce.Service{
		Store:           store,
		Catalog:         commerce.NewCatalogClient(newCatalogTS(t).URL),
		Events:          commerce.NewBroker(),
		Log:             zap.NewNop(),
		ProcessingDelay: time.Millisecond,
	}
	return svc, store
}

func TestCart_RoundTrip(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	if err := svc.AddToCart(ctx, "u1", "c-fe-01"); err != nil {
		t.Fatalf("add: %v", err)
	}

	items, err := svc.CartItems(ctx, "u1")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(items) != 1 || items[0].CourseID != "c-fe-01" || items[0].Qty != 1 {
		t.Fatalf("items=%+v", items)
	}

	// Adding again bumps qty but keeps a single entry.
	if err := svc.AddToCart(ctx, "u1", "c-fe-01"); err != nil {
		t.Fatalf("add again: %v", err)
	}
	items, _ = svc.CartItems(ctx, "u1")
	if len(items) != 1 || items[0].Qty != 2 {
		t.Fatalf("items=%+v", items)
	}

	if err := svc.RemoveFromCart(ctx, "u1", "c-fe-01"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	items, _ = svc.CartItems(ctx, "u1")
	if len(items) != 0 {
		t.Fatalf("after remove items=%+v", items)
	}

	_ = svc.AddToCart(ctx, "u1", "c-fe-01")
	_ = svc.AddToCart(ctx, "u1", "c-be-01")
	if err := svc.ClearCart(ctx, "u1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	items, _ = svc.CartItems(ctx, "u1")
	if len(items) != 0 {
		t.Fatalf("after clear items=%+v", items)
	}
}

func TestCart_UnknownCourseRejected(t *testing.T) {
	svc, _ := newService(t)

	err := svc.AddToCart(context.Background(), "u1", "no-such-id")
	if err != commerce.ErrUnknownCourse {
		t.Fatalf("err=%v want=ErrUnknownCourse", err)
	}
}

func TestCart_EventsPublished(t *testing.T) {
	svc, _ := newService(t)

	var got []commerce.Event
	unsub := svc.Events.Subscribe(func(e commerce.Event) { got = append(got, e) })

	ctx := context.Background()
	_ = svc.AddToCart(ctx, "u1", "c-fe-01")
	_ = svc.AddToCart(ctx, "u1", "c-be-01")
	_ = svc.RemoveFromCart(ctx, "u1", "c-fe-01")

	if len(got) != 3 {
		t.Fatalf("events=%d want=3", len(got))
	}
	if got[1].ItemCount != 2 {
		t.Fatalf("second event count=%d want=2", got[1].ItemCount)
	}
	if got[2].ItemCount != 1 {
		t.Fatalf("third event count=%d want=1", got[2].ItemCount)
	}

	unsub()
	_ = svc.ClearCart(ctx, "u1")
	if len(got) != 3 {
		t.Fatalf("subscriber still firing after unsubscribe")
	}
}

func TestCartView_DropsStaleIDsButKeepsStorage(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	store.SeedRawCart("u1", []byte(`[{"id":"c-fe-01","qty":1},{"id":"gone-course","qty":3}]`))

	view, err := svc.CartView(ctx, "u1")
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if len(view.Rows) != 1 || view.Rows[0].Item.CourseID != "c-fe-01" {
		t.Fatalf("rows=%+v", view.Rows)
	}
	if view.Subtotal != 49 || view.Currency != "USD" {
		t.Fatalf("subtotal=%d currency=%s", view.Subtotal, view.Currency)
	}

	// The stale id survives in storage even though the view hides it.
	items, _ := svc.CartItems(ctx, "u1")
	if len(items) != 2 {
		t.Fatalf("storage items=%+v", items)
	}
}

func TestDecodeCartItems(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []commerce.CartItem
	}{
		{
			name: "canonical",
			raw:  `[{"course_id":"a","qty":2}]`,
			want: []commerce.CartItem{{CourseID: "a", Qty: 2}},
		},
		{
			name: "legacy id key",
			raw:  `[{"id":"a","qty":2},{"id":"b"}]`,
			want: []commerce.CartItem{{CourseID: "a", Qty: 2}, {CourseID: "b", Qty: 1}},
		},
		{
			name: "bare id array",
			raw:  `["a","b"]`,
			want: []commerce.CartItem{{CourseID: "a", Qty: 1}, {CourseID: "b", Qty: 1}},
		},
		{
			name: "duplicates collapse",
			raw:  `["a",{"id":"a","qty":2}]`,
			want: []commerce.CartItem{{CourseID: "a", Qty: 3}},
		},
		{
			name: "blank ids dropped",
			raw:  `[{"id":"","qty":1},{"id":"  "},{"id":"a"}]`,
			want: []commerce.CartItem{{CourseID: "a", Qty: 1}},
		},
		{
			name: "not json",
			raw:  `{{{`,
			want: []commerce.CartItem{},
		},
		{
			name: "wrong shape",
			raw:  `{"id":"a"}`,
			want: []commerce.CartItem{},
		},
		{
			name: "empty",
			raw:  ``,
			want: []commerce.CartItem{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := commerce.DecodeCartItems([]byte(tc.raw))
			if len(got) != len(tc.want) {
				t.Fatalf("got=%+v want=%+v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("item %d: got=%+v want=%+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestPurchased_SeedAndUnion(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	// Before any checkout the demo seed shows through.
	ids, err := svc.PurchasedIDs(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ids) == 0 {
		t.Fatalf("expected demo seed")
	}

	seeded, err := svc.IsPurchased(ctx, "u1", ids[0])
	if err != nil || !seeded {
		t.Fatalf("seeded id not reported purchased: %v %v", seeded, err)
	}

	owned, err := svc.IsPurchased(ctx, "u1", "c-be-05")
	if err != nil {
		t.Fatalf("has: %v", err)
	}
	if owned {
		t.Fatalf("unexpected ownership of c-be-05")
	}
}
