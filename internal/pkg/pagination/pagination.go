package pagination

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Params represents pagination parameters. Requested is false when the
// caller sent neither page nor limit; list endpoints then return the full
// set, which is what the frontend expects.
type Params struct {
	Page      int  `json:"page"`
	Limit     int  `json:"limit"`
	Offset    int  `json:"-"`
	Requested bool `json:"-"`
}

// DefaultLimit is the default number of items per page
const DefaultLimit = 20

// MaxLimit is the maximum number of items per page
const MaxLimit = 100

// GetParams extracts pagination parameters from the request
func GetParams(c *fiber.Ctx) *Params {
	requested := c.Query("page") != "" || c.Query("limit") != ""

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", strconv.Itoa(DefaultLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return &Params{
		Page:      page,
		Limit:     limit,
		Offset:    (page - 1) * limit,
		Requested: requested,
	}
}
