package credentials

import (
	"context"
	"fmt"

	"github.com/zeebo/errs"

	"github.com/ib-77/maybe3/pkg/maybe"
	"github.com/ib-77/maybe3/pkg/maybe/solo"
)

// Error is the class of errors reported while decoding credentials.
var Error = errs.Class("credentials")

const (
	KeyAppName      = "app_name"
	KeyClientID     = "client_id"
	KeyClientSecret = "client_secret"
)

const (
	ReasonNoDocument = "no credentials document"
	ReasonIncomplete = "credentials incomplete"
	ReasonNoSource   = "no credentials source"
)

// Credentials identify an application against a remote API.
type Credentials struct {
	AppName  string
	ClientID string
	Secret   string
}

// IsCorrect reports whether every field is filled in.
func (c Credentials) IsCorrect() bool {
	return c.AppName != "" && c.ClientID != "" && c.Secret != ""
}

// String hides the secret.
func (c Credentials) String() string {
	secret := ""
	if c.Secret != "" {
		secret = "****"
	}
	return fmt.Sprintf("{app:%s client:%s secret:%s}", c.AppName, c.ClientID, secret)
}

// Source resolves credentials. An absent result carries a human-readable
// reason such as "field missing: client_id".
type Source interface {
	Credentials(ctx context.Context) maybe.Maybe[Credentials]
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) maybe.Maybe[Credentials]

func (f SourceFunc) Credentials(ctx context.Context) maybe.Maybe[Credentials] {
	return f(ctx)
}

// FirstAvailable asks sources in order and returns the first credentials
// found. Later sources are not consulted once one succeeds.
func FirstAvailable(sources ...Source) Source {
	return SourceFunc(func(ctx context.Context) maybe.Maybe[Credentials] {
		lookups := make([]func() maybe.Maybe[Credentials], 0, len(sources))
		for _, s := range sources {
			if s == nil {
				continue
			}
			s := s
			lookups = append(lookups, func() maybe.Maybe[Credentials] { return s.Credentials(ctx) })
		}

		if len(lookups) == 0 {
			return maybe.FromAbsence[Credentials](ReasonNoSource)
		}
		return solo.FirstOfLazy(lookups...)
	})
}
