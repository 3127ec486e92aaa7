package files

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// Resolver derives the public URL of a stored file. When PublicBaseURL is
// unset the inbound request's own origin is used, so the same stored name
// resolves correctly behind a reverse proxy and in local development.
type Resolver struct {
	PublicBaseURL string
}

func (r Resolver) FileURL(c echo.Context, storedName string) string {
	base := strings.TrimRight(r.PublicBaseURL, "/")
	if base == "" {
		base = c.Scheme() + "://" + c.Request().Host
	}
	return base + "/files/" + storedName
}
