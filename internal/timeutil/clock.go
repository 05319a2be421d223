package timeutil

import (
	"strings"
	"time"

	"github.com/xolan/timestamps/internal/apperr"
)

// Clock reads the current wall-clock time in a configured time zone.
type Clock struct {
	// Timezone is "Local", "UTC" or an IANA name such as "Europe/London".
	Timezone string
	// Now returns the current instant. Defaults to time.Now.
	Now func() time.Time
}

// Current returns the current time carrying the zone's UTC offset.
// Fails with a Clock error if the zone cannot be loaded.
func (c Clock) Current() (time.Time, error) {
	loc, err := LoadLocation(c.Timezone)
	if err != nil {
		return time.Time{}, err
	}

	now := c.Now
	if now == nil {
		now = time.Now
	}
	return now().In(loc), nil
}

// LoadLocation resolves a zone name. Empty and "Local" mean the system zone.
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, apperr.New(apperr.KindClock, "unable to determine local time offset", err)
	}
	return loc, nil
}
