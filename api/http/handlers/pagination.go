package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/usermanagement/pkg/user"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// parseListQuery reads page/pageSize/age/country from the query string.
// Values are forwarded as supplied; out-of-range pages are the store's
// concern, not validated here.
func parseListQuery(c *fiber.Ctx) user.ListQuery {
	q := user.ListQuery{Page: defaultPage, PageSize: defaultPageSize}
	if v := strings.TrimSpace(c.Query("page")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			q.Page = n
		}
	}
	if v := strings.TrimSpace(c.Query("pageSize")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			q.PageSize = n
		}
	}
	if v := strings.TrimSpace(c.Query("age")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			q.Age = &n
		}
	}
	if v := strings.TrimSpace(c.Query("country")); v != "" {
		q.Country = &v
	}
	return q
}
