package commerce

import "github.com/Elin23/LearnifyCourses/internal/catalog"

type AccessDecision string

const (
	AccessAllowed         AccessDecision = "allowed"
	DeniedUnauthenticated AccessDecision = "unauthenticated"
	DeniedUnpurchased     AccessDecision = "unpurchased"
)

// DecideAccess gates a synthetic session. The first session of any course is
// a free preview; everything else requires being logged in and owning the
// course, with the login check taking precedence.
func DecideAccess(s catalog.Session, authenticated, purchased bool) AccessDecision {
	if s.IsPreview {
		return AccessAllowed
	}
	if !authenticated {
		return DeniedUnauthenticated
	}
	if !purchased {
		return DeniedUnpurchased
	}
	return AccessAllowed
}

// RedirectFor maps a denial to the route the client should offer.
func RedirectFor(d AccessDecision) string {
	switch d {
	case DeniedUnauthenticated:
		return "/auth/login"
	case DeniedUnpurchased:
		return "/cart"
	default:
		return ""
	}
}
