// Package dailyreport builds and saves the per-organization, per-day
// attendance record.
//
// The in-memory edit set is a []models.ChildReport unique by ChildID. All
// set operations are pure: they return a new slice and never modify the
// one passed in.
package dailyreport

import (
	"context"
	"fmt"

	"github.com/dalemusser/welfarehub/internal/domain/models"
	"github.com/dalemusser/welfarehub/internal/domain/repository"
)

func blankRow(c models.Child) models.ChildReport {
	return models.ChildReport{
		ChildID: c.ChildID,
		Pickup:  c.DefaultPickup,
		Drop:    c.DefaultDrop,
		AddOns:  []string{},
	}
}

func cloneRow(cr models.ChildReport) models.ChildReport {
	out := cr
	out.AddOns = make([]string, len(cr.AddOns))
	copy(out.AddOns, cr.AddOns)
	return out
}

func cloneSet(set []models.ChildReport) []models.ChildReport {
	out := make([]models.ChildReport, len(set))
	for i, cr := range set {
		out[i] = cloneRow(cr)
	}
	return out
}

// LoadOrInitialize returns the stored set verbatim when a report exists,
// otherwise one blank row per enrolled child with its default transport
// flags.
func LoadOrInitialize(children []models.Child, existing *models.DailyReport) []models.ChildReport {
	if existing != nil {
		return cloneSet(existing.Children)
	}
	out := make([]models.ChildReport, 0, len(children))
	for _, c := range children {
		out = append(out, blankRow(c))
	}
	return out
}

// MergeRoster keeps every entry of set in order and appends a blank row for
// each enrolled child that has none. Saved reports omit absent children, so
// reopening one needs this to show them again.
func MergeRoster(set []models.ChildReport, children []models.Child) []models.ChildReport {
	out := cloneSet(set)
	seen := make(map[string]struct{}, len(set))
	for _, cr := range set {
		seen[cr.ChildID] = struct{}{}
	}
	for _, c := range children {
		if _, ok := seen[c.ChildID]; ok {
			continue
		}
		seen[c.ChildID] = struct{}{}
		out = append(out, blankRow(c))
	}
	return out
}

// Find returns the entry for childID.
func Find(set []models.ChildReport, childID string) (models.ChildReport, bool) {
	for _, cr := range set {
		if cr.ChildID == childID {
			return cr, true
		}
	}
	return models.ChildReport{}, false
}

// UpsertChildReport replaces the entry with the same ChildID, or appends
// report when there is none.
func UpsertChildReport(set []models.ChildReport, report models.ChildReport) []models.ChildReport {
	out := cloneSet(set)
	for i := range out {
		if out[i].ChildID == report.ChildID {
			out[i] = cloneRow(report)
			return out
		}
	}
	return append(out, cloneRow(report))
}

// Patch is a field-level edit of one ChildReport. Nil fields are left as is.
type Patch struct {
	Arrival   *string   `json:"arrival,omitempty"`
	Departure *string   `json:"departure,omitempty"`
	Pickup    *bool     `json:"pickup,omitempty"`
	Drop      *bool     `json:"drop,omitempty"`
	AddOns    *[]string `json:"addOns,omitempty"`
}

// Apply returns cr with the patch's non-nil fields written over it.
func (p Patch) Apply(cr models.ChildReport) models.ChildReport {
	out := cloneRow(cr)
	if p.Arrival != nil {
		out.Arrival = *p.Arrival
	}
	if p.Departure != nil {
		out.Departure = *p.Departure
	}
	if p.Pickup != nil {
		out.Pickup = *p.Pickup
	}
	if p.Drop != nil {
		out.Drop = *p.Drop
	}
	if p.AddOns != nil {
		out.AddOns = append([]string{}, (*p.AddOns)...)
	}
	return out
}

// PatchChildReport applies patch to the entry for childID, creating an
// empty entry first if the child has none.
func PatchChildReport(set []models.ChildReport, childID string, patch Patch) []models.ChildReport {
	cur, ok := Find(set, childID)
	if !ok {
		cur = models.ChildReport{ChildID: childID, AddOns: []string{}}
	}
	return UpsertChildReport(set, patch.Apply(cur))
}

// Persisted filters set to the entries Save would keep.
func Persisted(set []models.ChildReport) []models.ChildReport {
	out := make([]models.ChildReport, 0, len(set))
	for _, cr := range set {
		if Attended(cr) {
			out = append(out, cloneRow(cr))
		}
	}
	return out
}

// Stats are the header figures shown above the editor grid.
type Stats struct {
	TotalAttendance    int     `json:"totalAttendance"`
	AverageSupportTime float64 `json:"averageSupportTime"`
}

// ComputeStats counts attended rows (editor definition) and averages
// support hours across them.
func ComputeStats(set []models.ChildReport) Stats {
	var st Stats
	var hours float64
	for _, cr := range set {
		if !Attended(cr) {
			continue
		}
		st.TotalAttendance++
		hours += ComputeSupportHours(cr.Arrival, cr.Departure)
	}
	if st.TotalAttendance > 0 {
		st.AverageSupportTime = hours / float64(st.TotalAttendance)
	}
	return st
}

// Editor persists edit sets through a DailyReportRepository.
type Editor struct {
	Reports repository.DailyReportRepository
}

// Load returns the edit set for (orgID, date): the stored report (or the
// roster defaults) re-merged against the current roster.
func (e Editor) Load(ctx context.Context, orgID, date string, children []models.Child) ([]models.ChildReport, *models.DailyReport, error) {
	existing, err := e.Reports.FindByOrgDate(ctx, orgID, date)
	if err != nil {
		return nil, nil, fmt.Errorf("load daily report %s: %w", models.ReportID(orgID, date), err)
	}
	return MergeRoster(LoadOrInitialize(children, existing), children), existing, nil
}

// Save drops entries with neither arrival nor departure and upserts the
// report for (orgID, date). Saving the same set twice leaves exactly one
// record for the key.
func (e Editor) Save(ctx context.Context, orgID, date string, set []models.ChildReport) (models.DailyReport, error) {
	report := models.DailyReport{
		ReportID: models.ReportID(orgID, date),
		OrgID:    orgID,
		Date:     date,
		Children: Persisted(set),
	}
	saved, err := e.Reports.Upsert(ctx, report)
	if err != nil {
		return models.DailyReport{}, fmt.Errorf("save daily report %s: %w", report.ReportID, err)
	}
	return saved, nil
}
