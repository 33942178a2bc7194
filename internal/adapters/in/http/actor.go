package http

import (
	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

const (
	actorIDHeader   = "X-Actor-Id"
	actorRoleHeader = "X-Actor-Role"

	actorContextKey = "actor"
)

// Roles the marketplace frontends send. The backend does not authenticate
// them; they scope default filters and show up in transition logs.
const (
	RoleCustomer       = "customer"
	RoleVendor         = "vendor"
	RoleDeliveryPerson = "delivery_person"
)

// Actor is the request-scoped identity extracted from the actor headers.
// Either field may be empty when the caller sends no headers.
type Actor struct {
	ID   *kernel.UUID
	Role string
}

// ActorMiddleware parses the X-Actor-Id and X-Actor-Role headers into an
// Actor stored on the request context. A malformed actor ID is ignored
// rather than rejected; identity is advisory, not authentication.
func ActorMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			actor := Actor{
				Role: ctx.Request().Header.Get(actorRoleHeader),
			}

			if raw := ctx.Request().Header.Get(actorIDHeader); raw != "" {
				if id, err := kernel.UUIDFromString(raw); err == nil {
					actor.ID = &id
				}
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

// ActorFromContext returns the Actor parsed by ActorMiddleware, or the
// zero Actor when the middleware is not installed.
func ActorFromContext(ctx echo.Context) Actor {
	if actor, ok := ctx.Get(actorContextKey).(Actor); ok {
		return actor
	}
	return Actor{}
}
