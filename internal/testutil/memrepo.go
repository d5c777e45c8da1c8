package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/dalemusser/welfarehub/internal/domain/models"
	"github.com/dalemusser/welfarehub/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemRepo is an in-memory repository.Repository. Records keep insertion
// order. Setting Err makes every call fail with it.
type MemRepo[T any, P any] struct {
	mu    sync.Mutex
	order []string
	recs  map[string]T
	setID func(*T, primitive.ObjectID)
	apply func(T, P) T

	Err error
}

func newMemRepo[T any, P any](setID func(*T, primitive.ObjectID), apply func(T, P) T) *MemRepo[T, P] {
	return &MemRepo[T, P]{recs: map[string]T{}, setID: setID, apply: apply}
}

func (m *MemRepo[T, P]) FetchAll(ctx context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]T, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.recs[id])
	}
	return out, nil
}

func (m *MemRepo[T, P]) Create(ctx context.Context, rec T) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	return m.insertLocked(rec), nil
}

func (m *MemRepo[T, P]) insertLocked(rec T) string {
	oid := primitive.NewObjectID()
	m.setID(&rec, oid)
	id := oid.Hex()
	m.recs[id] = rec
	m.order = append(m.order, id)
	return id
}

func (m *MemRepo[T, P]) Update(ctx context.Context, id string, patch P) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	rec, ok := m.recs[id]
	if !ok {
		return repository.ErrNotFound
	}
	m.recs[id] = m.apply(rec, patch)
	return nil
}

func (m *MemRepo[T, P]) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.recs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.recs, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of stored records.
func (m *MemRepo[T, P]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.order)
}

// ---- typed repositories ----

func NewMemOrganizations() *MemRepo[models.Organization, models.OrganizationPatch] {
	return newMemRepo(
		func(o *models.Organization, id primitive.ObjectID) { o.ID = id },
		func(o models.Organization, p models.OrganizationPatch) models.Organization {
			if p.Name != nil {
				o.Name = *p.Name
			}
			if p.Prefecture != nil {
				o.Prefecture = *p.Prefecture
			}
			if p.Address != nil {
				o.Address = *p.Address
			}
			if p.FacilityType != nil {
				o.FacilityType = *p.FacilityType
			}
			if p.StartDate != nil {
				o.StartDate = *p.StartDate
			}
			if p.EndDate != nil {
				o.EndDate = *p.EndDate
			}
			return o
		},
	)
}

func NewMemUsers() *MemRepo[models.User, models.UserPatch] {
	return newMemRepo(
		func(u *models.User, id primitive.ObjectID) { u.ID = id },
		func(u models.User, p models.UserPatch) models.User {
			if p.OrgID != nil {
				u.OrgID = *p.OrgID
			}
			if p.Role != nil {
				u.Role = *p.Role
			}
			if p.Email != nil {
				u.Email = *p.Email
			}
			if p.IsActive != nil {
				u.IsActive = *p.IsActive
			}
			if p.PasswordHash != nil {
				u.PasswordHash = *p.PasswordHash
			}
			return u
		},
	)
}

func NewMemAddOns() *MemRepo[models.AddOnMaster, models.AddOnPatch] {
	return newMemRepo(
		func(a *models.AddOnMaster, id primitive.ObjectID) { a.ID = id },
		func(a models.AddOnMaster, p models.AddOnPatch) models.AddOnMaster {
			if p.Name != nil {
				a.Name = *p.Name
			}
			if p.UnitValue != nil {
				a.UnitValue = *p.UnitValue
			}
			if p.IsBasic != nil {
				a.IsBasic = *p.IsBasic
			}
			return a
		},
	)
}

// MemChildren is an in-memory repository.ChildRepository.
type MemChildren struct {
	*MemRepo[models.Child, models.ChildPatch]
}

var _ repository.ChildRepository = (*MemChildren)(nil)

func NewMemChildren() *MemChildren {
	return &MemChildren{newMemRepo(
		func(c *models.Child, id primitive.ObjectID) { c.ID = id },
		func(c models.Child, p models.ChildPatch) models.Child {
			if p.OrgID != nil {
				c.OrgID = *p.OrgID
			}
			if p.Name != nil {
				c.Name = *p.Name
			}
			if p.DefaultPickup != nil {
				c.DefaultPickup = *p.DefaultPickup
			}
			if p.DefaultDrop != nil {
				c.DefaultDrop = *p.DefaultDrop
			}
			return c
		},
	)}
}

func (m *MemChildren) ListByOrg(ctx context.Context, orgID string) ([]models.Child, error) {
	all, err := m.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	out := []models.Child{}
	for _, c := range all {
		if c.OrgID == orgID {
			out = append(out, c)
		}
	}
	return out, nil
}

// MemDailyReports is an in-memory repository.DailyReportRepository.
// Upserts counts calls to Upsert.
type MemDailyReports struct {
	*MemRepo[models.DailyReport, models.DailyReportPatch]
	Upserts int
}

var _ repository.DailyReportRepository = (*MemDailyReports)(nil)

func NewMemDailyReports() *MemDailyReports {
	return &MemDailyReports{MemRepo: newMemRepo(
		func(r *models.DailyReport, id primitive.ObjectID) { r.ID = id },
		func(r models.DailyReport, p models.DailyReportPatch) models.DailyReport {
			if p.Children != nil {
				r.Children = *p.Children
			}
			return r
		},
	)}
}

func (m *MemDailyReports) findLocked(orgID, date string) (string, bool) {
	for _, id := range m.order {
		r := m.recs[id]
		if r.OrgID == orgID && r.Date == date {
			return id, true
		}
	}
	return "", false
}

func (m *MemDailyReports) FindByOrgDate(ctx context.Context, orgID, date string) (*models.DailyReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	id, ok := m.findLocked(orgID, date)
	if !ok {
		return nil, nil
	}
	r := m.recs[id]
	return &r, nil
}

func (m *MemDailyReports) ListByOrgRange(ctx context.Context, orgID, from, to string) ([]models.DailyReport, error) {
	all, err := m.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	out := []models.DailyReport{}
	for _, r := range all {
		if orgID != "" && r.OrgID != orgID {
			continue
		}
		if (from != "" && r.Date < from) || (to != "" && r.Date > to) {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (m *MemDailyReports) Upsert(ctx context.Context, report models.DailyReport) (models.DailyReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Upserts++
	if m.Err != nil {
		return models.DailyReport{}, m.Err
	}
	report.ReportID = models.ReportID(report.OrgID, report.Date)
	if report.Children == nil {
		report.Children = []models.ChildReport{}
	}
	if id, ok := m.findLocked(report.OrgID, report.Date); ok {
		report.ID = m.recs[id].ID
		m.recs[id] = report
		return report, nil
	}
	id := m.insertLocked(report)
	return m.recs[id], nil
}

// MemRevenues is an in-memory repository.RevenueRepository.
type MemRevenues struct {
	mu   sync.Mutex
	recs []models.Revenue

	Err error
}

var _ repository.RevenueRepository = (*MemRevenues)(nil)

func (m *MemRevenues) Upsert(ctx context.Context, rev models.Revenue) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	rev.RevenueID = models.ReportID(rev.OrgID, rev.Date)
	for i, r := range m.recs {
		if r.OrgID == rev.OrgID && r.Date == rev.Date {
			m.recs[i] = rev
			return nil
		}
	}
	m.recs = append(m.recs, rev)
	return nil
}

func (m *MemRevenues) ListByOrgRange(ctx context.Context, orgID, from, to string) ([]models.Revenue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := []models.Revenue{}
	for _, r := range m.recs {
		if (orgID == "" || r.OrgID == orgID) && r.Date >= from && r.Date <= to {
			out = append(out, r)
		}
	}
	return out, nil
}
