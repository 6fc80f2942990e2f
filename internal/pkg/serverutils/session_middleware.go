package serverutils

import (
	"context"
	"time"

	"techmart-be/pkg/store"

	"github.com/gofiber/fiber/v2"
)

const (
	SessionCookie = "techmart_session"
	SessionHeader = "X-Session-Token"

	sessionLocal = "session"
)

// SessionResolver loads the visitor session for a token. A non-empty token
// return value means a new session was started and the client needs it.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*store.Session, string, error)
	Save(ctx context.Context, session *store.Session) error
	TTL() time.Duration
}

// SessionMiddleware attaches the session to the request and writes it back
// once the handler has run, including when the handler failed.
func SessionMiddleware(resolver SessionResolver) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		token := ctx.Get(SessionHeader)
		if token == "" {
			token = ctx.Cookies(SessionCookie)
		}

		sess, issued, err := resolver.Resolve(ctx.UserContext(), token)
		if err != nil {
			return err
		}
		if issued != "" {
			ctx.Cookie(&fiber.Cookie{
				Name:     SessionCookie,
				Value:    issued,
				Path:     "/",
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
				Expires:  time.Now().Add(resolver.TTL()),
			})
			ctx.Set(SessionHeader, issued)
		}

		ctx.Locals(sessionLocal, sess)
		handlerErr := ctx.Next()

		if err := resolver.Save(ctx.UserContext(), sess); err != nil && handlerErr == nil {
			return err
		}
		return handlerErr
	}
}

// CurrentSession returns the session attached by SessionMiddleware.
func CurrentSession(ctx *fiber.Ctx) *store.Session {
	sess, _ := ctx.Locals(sessionLocal).(*store.Session)
	return sess
}
