package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PageParams struct {
	Page  int    `json:"page" form:"page"`
	Limit int    `json:"limit" form:"limit"`
	Sort  string `json:"sort" form:"sort"`
}

// sortTable enumerates every sort token the API accepts. Each maps to a
// single-key order; ties are left to store iteration order.
var sortTable = map[string]bson.D{
	"newest":      {{Key: "created_at", Value: -1}},
	"oldest":      {{Key: "created_at", Value: 1}},
	"priceAsc":    {{Key: "price.min", Value: 1}},
	"priceDesc":   {{Key: "price.min", Value: -1}},
	"powerAsc":    {{Key: "performance.power_bhp", Value: 1}},
	"powerDesc":   {{Key: "performance.power_bhp", Value: -1}},
	"yearAsc":     {{Key: "launch_year", Value: 1}},
	"yearDesc":    {{Key: "launch_year", Value: -1}},
	"mileageAsc":  {{Key: "efficiency.mileage", Value: 1}},
	"mileageDesc": {{Key: "efficiency.mileage", Value: -1}},
}

// ResolvePageParams normalizes raw page/limit/sort tokens. Non-numeric or
// absent page and limit fall back to defaults, limit is clamped into
// [MinPageSize, MaxPageSize], unknown sort tokens fall back to newest.
func ResolvePageParams(pageRaw, limitRaw, sortRaw string) *PageParams {
	page, err := strconv.Atoi(pageRaw)
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(limitRaw)
	if err != nil {
		limit = DefaultPageSize
	}
	if limit < MinPageSize {
		limit = MinPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	sort := sortRaw
	if _, ok := sortTable[sort]; !ok {
		sort = DefaultSort
	}

	return &PageParams{Page: page, Limit: limit, Sort: sort}
}

func GetPageParams(c *gin.Context) *PageParams {
	return ResolvePageParams(c.Query("page"), c.Query("limit"), c.Query("sort"))
}

func (p *PageParams) GetSkip() int {
	return (p.Page - 1) * p.Limit
}

func (p *PageParams) GetFindOptions() *options.FindOptions {
	opts := options.Find()
	opts.SetSkip(int64(p.GetSkip()))
	opts.SetLimit(int64(p.Limit))
	opts.SetSort(p.SortSpec())
	return opts
}

func (p *PageParams) SortSpec() bson.D {
	if spec, ok := sortTable[p.Sort]; ok {
		return spec
	}
	return sortTable[DefaultSort]
}

func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}
