package consignment

import (
	"freightops/internal/pkg/errs"
)

const maxPackages = 10000

// Route describes what moves where: origin and destination cities, the goods,
// and the package count.
type Route struct {
	fromCity         string
	toCity           string
	goodsDescription string
	packages         int
}

// NewRoute creates a route. Both cities are required and the package count must
// be between 1 and 10000.
func NewRoute(fromCity, toCity, goodsDescription string, packages int) (Route, error) {
	if fromCity == "" {
		return Route{}, errs.NewValueIsRequiredError("fromCity")
	}
	if toCity == "" {
		return Route{}, errs.NewValueIsRequiredError("toCity")
	}
	if packages < 1 || packages > maxPackages {
		return Route{}, errs.NewValueIsOutOfRangeError("packages", packages, 1, maxPackages)
	}

	return Route{
		fromCity:         fromCity,
		toCity:           toCity,
		goodsDescription: goodsDescription,
		packages:         packages,
	}, nil
}

// Validate reports whether the route carries its required fields.
// The zero value is invalid.
func (r Route) Validate() error {
	if r.fromCity == "" || r.toCity == "" {
		return errs.NewValueIsRequiredError("route cities")
	}
	return nil
}

// FromCity returns the origin city.
func (r Route) FromCity() string { return r.fromCity }

// ToCity returns the destination city.
func (r Route) ToCity() string { return r.toCity }

// GoodsDescription returns the description of the goods, possibly empty.
func (r Route) GoodsDescription() string { return r.goodsDescription }

// Packages returns the number of packages.
func (r Route) Packages() int { return r.packages }
