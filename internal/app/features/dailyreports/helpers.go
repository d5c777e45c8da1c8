// internal/app/features/dailyreports/helpers.go
package dailyreports

import (
	"strings"

	"github.com/dalemusser/welfarehub/internal/app/reporting/dailyreport"
	"github.com/dalemusser/welfarehub/internal/app/system/inputval"
	"github.com/dalemusser/welfarehub/internal/domain/models"
)

func buildDayView(orgID, date string, set []models.ChildReport, children []models.Child, saved bool) dayView {
	names := make(map[string]string, len(children))
	for _, c := range children {
		names[c.ChildID] = c.Name
	}
	rows := make([]rowView, 0, len(set))
	for _, cr := range set {
		rows = append(rows, rowView{
			ChildReport:  cr,
			ChildName:    names[cr.ChildID],
			SupportHours: dailyreport.ComputeSupportHours(cr.Arrival, cr.Departure),
			Attended:     dailyreport.Attended(cr),
		})
	}
	return dayView{
		OrgID: orgID,
		Date:  date,
		Saved: saved,
		Rows:  rows,
		Stats: dailyreport.ComputeStats(set),
	}
}

// cleanEntry trims the clocks and de-duplicates add-on ids in place.
func cleanEntry(cr *models.ChildReport) {
	cr.ChildID = strings.TrimSpace(cr.ChildID)
	cr.Arrival = strings.TrimSpace(cr.Arrival)
	cr.Departure = strings.TrimSpace(cr.Departure)
	cr.AddOns = dedupe(cr.AddOns)
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func validateClocks(errs *inputval.Errors, childID, arrival, departure string) {
	if arrival != "" && !inputval.IsClock(arrival) {
		errs.Addf("Arrival for %s must be HH:MM.", childID)
	}
	if departure != "" && !inputval.IsClock(departure) {
		errs.Addf("Departure for %s must be HH:MM.", childID)
	}
}

// validateAddOns rejects ids missing from catalog. Basic add-ons are
// accepted like any other.
func validateAddOns(errs *inputval.Errors, childID string, ids []string, catalog map[string]struct{}) {
	for _, id := range ids {
		if _, ok := catalog[id]; !ok {
			errs.Addf("Unknown add-on %s for %s.", id, childID)
		}
	}
}

// known reports whether childID is on the roster or already in set.
func known(childID string, children []models.Child, set []models.ChildReport) bool {
	for _, c := range children {
		if c.ChildID == childID {
			return true
		}
	}
	_, ok := dailyreport.Find(set, childID)
	return ok
}
