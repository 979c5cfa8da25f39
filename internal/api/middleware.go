package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/contalibre-dev/contalibre/internal/tenant"
)

const companyHeader = "X-Company-ID"

const tenantKey = "tenant"

// TenantResolver resolves the request's company once, before any handler
// runs. Authentication itself is out of scope; the upstream gateway is
// trusted to have set the header.
func TenantResolver() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(companyHeader)
		if raw != "" {
			if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
				c.Set(tenantKey, tenant.Context{CompanyID: uint(id)})
			}
		}
		c.Next()
	}
}

// tenantFrom returns the resolved tenant context; the zero Context when the
// header was absent or unparsable.
func tenantFrom(c *gin.Context) tenant.Context {
	if v, ok := c.Get(tenantKey); ok {
		if tc, ok := v.(tenant.Context); ok {
			return tc
		}
	}
	return tenant.Context{}
}
