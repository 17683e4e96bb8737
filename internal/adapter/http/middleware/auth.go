package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sfg_core/pkg"
)

// TenantKey is the context key under which the caller's tenant id is stored.
const TenantKey = "tenant_id"

// DefaultTenant is used when the dashboard omits the X-Tenant-Id header.
const DefaultTenant = "default"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)

// RequireBearer enforces a bearer token on API requests and plumbs the
// X-Tenant-Id header into the request context. An empty expected token
// disables the check so local development works without credentials.
func RequireBearer(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(TenantKey, tenantFrom(c))

		if expected == "" {
			c.Next()
			return
		}

		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" || token != expected {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func tenantFrom(c *gin.Context) string {
	if t := strings.TrimSpace(c.GetHeader("X-Tenant-Id")); t != "" {
		return t
	}
	return DefaultTenant
}

// Tenant returns the tenant id stored by RequireBearer.
func Tenant(c *gin.Context) string {
	if t, ok := c.Get(TenantKey); ok {
		if s, ok := t.(string); ok && s != "" {
			return s
		}
	}
	return DefaultTenant
}
