package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/easyscheduler/admin-backend/internal/domain/privilege"
	"github.com/easyscheduler/admin-backend/internal/httperr"
)

// RequirePrivilege gates a route group on at-least-view access to a page.
// With redirect=true a denial answers with a 302 to the login or
// no-privileges page (browser flows); with redirect=false it answers 401/403
// JSON (ajax flows).
func RequirePrivilege(gate *privilege.Gate, page privilege.Page, redirect bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := IdentityFrom(c)

		decision, err := gate.Check(c.Request.Context(), identity, page, redirect)
		if err != nil {
			httperr.Internal(c, "privilege_check_failed", "could not verify privileges")
			c.Abort()
			return
		}

		if decision.Allowed {
			c.Next()
			return
		}

		if redirect && decision.RedirectTo != "" {
			c.Redirect(http.StatusFound, decision.RedirectTo)
			c.Abort()
			return
		}

		if decision.Reason == privilege.ReasonUnauthenticated {
			httperr.Unauthorized(c, "unauthenticated", "login required")
		} else {
			httperr.Write(c, http.StatusForbidden, "insufficient_privilege",
				"you do not have the required privileges for this page")
		}
		c.Abort()
	}
}
