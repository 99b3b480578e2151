package httpapi

import (
	"context"

	"github.com/riskibarqy/scouting-dashboard/internal/domain/user"
)

type principalKey struct{}

func withPrincipal(ctx context.Context, p user.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// principalFromContext reports false on routes served without auth.
func principalFromContext(ctx context.Context) (user.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(user.Principal)
	return p, ok
}
