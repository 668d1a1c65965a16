// file: internals/helpers/pagination.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Sort: ?sort_by= & ?order= (alias ?sort=) dari query
type Sort struct {
	SortBy    string
	SortOrder string // asc|desc
}

func ParseSort(c *fiber.Ctx, defaultSortBy, defaultSortOrder string) Sort {
	sortBy := strings.TrimSpace(c.Query("sort_by"))
	if sortBy == "" {
		sortBy = defaultSortBy
	}
	order := strings.ToLower(strings.TrimSpace(firstNonEmpty(c.Query("order"), c.Query("sort"))))
	if order != "asc" && order != "desc" {
		order = strings.ToLower(defaultSortOrder)
		if order != "asc" && order != "desc" {
			order = "desc"
		}
	}
	return Sort{SortBy: sortBy, SortOrder: order}
}

// OrderExpr: ekspresi ORDER BY aman (kolom dari whitelist), tanpa kata "ORDER BY"
func (s Sort) OrderExpr(allowed map[string]string, defaultKey string) string {
	col, ok := allowed[s.SortBy]
	if !ok {
		col = allowed[defaultKey]
	}
	if col == "" {
		return ""
	}
	dir := "DESC"
	if s.SortOrder == "asc" {
		dir = "ASC"
	}
	return col + " " + dir
}

func firstNonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}
