package registry

import (
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/NOMAN1802/ibooking/internal/apperr"
)

// SearchQuery is a parsed availability search. Dates arrive as
// "<Month> <Day>" strings ("June 10") and match stored windows exactly:
// a listing available June 1–10 does not match a June 3–7 search.
type SearchQuery struct {
	Location      string
	CheckInMonth  string
	CheckInDate   int
	CheckOutMonth string
	CheckOutDate  int

	Guest    int
	hasGuest bool
}

// ParseSearchQuery validates the raw query parameters. A date string
// missing its day token is a ValidationError, not a crash.
func ParseSearchQuery(location, checkIn, checkOut, guest string) (SearchQuery, error) {
	q := SearchQuery{Location: location}

	var err error
	if q.CheckInMonth, q.CheckInDate, err = splitWindow(checkIn); err != nil {
		return SearchQuery{}, err
	}
	if q.CheckOutMonth, q.CheckOutDate, err = splitWindow(checkOut); err != nil {
		return SearchQuery{}, err
	}

	if guest != "" {
		n, err := strconv.Atoi(guest)
		if err != nil {
			return SearchQuery{}, apperr.Validationf("malformed guest count %q", guest)
		}
		q.Guest = n
		q.hasGuest = true
	}
	return q, nil
}

func splitWindow(s string) (month string, day int, err error) {
	parts := strings.Fields(s)
	if len(parts) < 2 {
		return "", 0, apperr.Validation("malformed date token")
	}
	day, convErr := strconv.Atoi(parts[1])
	if convErr != nil {
		return "", 0, apperr.Validation("malformed date token")
	}
	return parts[0], day, nil
}

func (q SearchQuery) filter() bson.M {
	filter := bson.M{
		"location":               q.Location,
		"availableCheckInMonth":  q.CheckInMonth,
		"availableCheckInDate":   q.CheckInDate,
		"availableCheckOutMonth": q.CheckOutMonth,
		"availableCheckOutDate":  q.CheckOutDate,
	}
	if q.hasGuest {
		filter["guest"] = q.Guest
	}
	return filter
}
