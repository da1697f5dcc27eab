package feed

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// PostedLayout is the DD/MM/YYYY HH:mm format used by the feed.
const PostedLayout = "02/01/2006 15:04"

// time.Parse accepts a single-digit hour for "15"; the pattern pins every
// component to its full width first.
var postedPattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4} \d{2}:\d{2}$`)

// Instant is a parsed posted date. The zero value is the unparsable marker.
type Instant struct {
	t  time.Time
	ok bool
}

// Valid reports whether the source string was parsable.
func (i Instant) Valid() bool {
	return i.ok
}

// Time returns the parsed time, or the zero time when unparsable.
func (i Instant) Time() time.Time {
	return i.t
}

// Compare orders instants with unparsable ones before every parsable one.
func (i Instant) Compare(other Instant) int {
	switch {
	case !i.ok && !other.ok:
		return 0
	case !i.ok:
		return -1
	case !other.ok:
		return 1
	}
	return i.t.Compare(other.t)
}

// ParsePosted parses a posted-on string strictly. Anything that is not
// DD/MM/YYYY HH:mm, or names an impossible date, is unparsable.
func ParsePosted(value string) Instant {
	value = strings.TrimSpace(value)
	if !postedPattern.MatchString(value) {
		return Instant{}
	}
	t, err := time.ParseInLocation(PostedLayout, value, time.UTC)
	if err != nil {
		return Instant{}
	}
	return Instant{t: t, ok: true}
}

// PostedAgo renders a posted-on string relative to now, e.g. "3 days ago".
func PostedAgo(value string, now time.Time) string {
	posted := ParsePosted(value)
	if !posted.Valid() {
		return "Recently posted"
	}

	elapsed := now.Sub(posted.Time())
	if elapsed < time.Minute {
		return "just now"
	}

	switch {
	case elapsed < time.Hour:
		return ago(int(elapsed/time.Minute), "minute")
	case elapsed < 24*time.Hour:
		return ago(int(elapsed/time.Hour), "hour")
	case elapsed < 30*24*time.Hour:
		return ago(int(elapsed/(24*time.Hour)), "day")
	case elapsed < 365*24*time.Hour:
		return ago(int(elapsed/(30*24*time.Hour)), "month")
	default:
		return ago(int(elapsed/(365*24*time.Hour)), "year")
	}
}

func ago(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
