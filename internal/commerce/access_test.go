package commerce_test

import (
	"testing"

	"github.com/Elin23/LearnifyCourses/internal/catalog"
	"github.com/Elin23/LearnifyCourses/internal/commerce"
)

func TestDecideAccess(t *testing.T) {
	preview := catalog.Session{Index: 1, IsPreview: true}
	locked := catalog.Session{Index: 2, IsPreview: false}

	cases := []struct {
		name      string
		session   catalog.Session
		authed    bool
		purchased bool
		want      commerce.AccessDecision
	}{
		{"preview anonymous", preview, false, false, commerce.AccessAllowed},
		{"preview authed unpurchased", preview, true, false, commerce.AccessAllowed},
		{"preview authed purchased", preview, true, true, commerce.AccessAllowed},
		{"preview anonymous purchased", preview, false, true, commerce.AccessAllowed},
		{"locked anonymous", locked, false, false, commerce.DeniedUnauthenticated},
		{"locked anonymous purchased", locked, false, true, commerce.DeniedUnauthenticated},
		{"locked authed unpurchased", locked, true, false, commerce.DeniedUnpurchased},
		{"locked authed purchased", locked, true, true, commerce.AccessAllowed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := commerce.DecideAccess(tc.session, tc.authed, tc.purchased)
			if got != tc.want {
				t.Fatalf("got=%s want=%s", got, tc.want)
			}
		})
	}
}

func TestRedirectFor(t *testing.T) {
	if got := commerce.RedirectFor(commerce.DeniedUnauthenticated); got != "/auth/login" {
		t.Fatalf("got=%s", got)
	}
	if got := commerce.RedirectFor(commerce.DeniedUnpurchased); got != "/cart" {
		t.Fatalf("got=%s", got)
	}
	if got := commerce.RedirectFor(commerce.AccessAllowed); got != "" {
		t.Fatalf("got=%s", got)
	}
}
