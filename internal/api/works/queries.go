package works

import (
	"strconv"

	"artivisual-app/internal/catalog"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// browseQueryFrom reads ?category=&min=&max=&sort=. Absent bounds stay open.
func browseQueryFrom(c *gin.Context) (catalog.BrowseQuery, error) {
	q := catalog.BrowseQuery{
		Category: c.Query("category"),
		Sort:     catalog.ParseSortKey(c.Query("sort")),
	}

	var err error
	if q.MinPrice, err = priceParam(c, "min"); err != nil {
		return q, err
	}
	if q.MaxPrice, err = priceParam(c, "max"); err != nil {
		return q, err
	}
	return q, nil
}

func priceParam(c *gin.Context, key string) (*int64, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return nil, errors.Errorf("%s must be a non-negative integer", key)
	}
	return &v, nil
}
