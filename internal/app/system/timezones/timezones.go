// Package timezones resolves the IANA zone that defines a facility's
// calendar day. Zone data is compiled in so lookups work in minimal images.
package timezones

import (
	"fmt"
	"strings"
	"sync"
	"time"
	_ "time/tzdata"
)

// Default is the zone used when none is configured.
const Default = "Asia/Tokyo"

var (
	mu    sync.Mutex
	cache = map[string]*time.Location{}
)

// Load returns the location for id. Blank means Default. Results are cached.
func Load(id string) (*time.Location, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		id = Default
	}

	mu.Lock()
	defer mu.Unlock()
	if loc, ok := cache[id]; ok {
		return loc, nil
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q: %w", id, err)
	}
	cache[id] = loc
	return loc, nil
}

// Valid reports whether id names a loadable zone.
func Valid(id string) bool {
	_, err := Load(id)
	return err == nil
}

// Clock returns a now function that reports the current time in loc.
func Clock(loc *time.Location) func() time.Time {
	return func() time.Time { return time.Now().In(loc) }
}
