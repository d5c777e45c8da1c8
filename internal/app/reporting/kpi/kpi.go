// Package kpi aggregates daily reports into dashboard figures.
//
// Attendance here requires both arrival and departure. The report editor
// counts a child with only one of them as attended; both rules are kept on
// purpose and pinned by tests.
package kpi

import (
	"sort"

	"github.com/dalemusser/welfarehub/internal/app/reporting/dailyreport"
	"github.com/dalemusser/welfarehub/internal/domain/models"
)

// DefaultHourlyUnitPrice is the revenue accrued per support hour.
const DefaultHourlyUnitPrice = 800

// topN is how many add-ons TopAddOns keeps.
const topN = 3

// Options tune Aggregate. Zero values select DefaultHourlyUnitPrice and
// Last7Days.
type Options struct {
	HourlyUnitPrice float64
	// Window picks the trend granularity: daily for Last7Days, weekly for
	// Last30Days. Zero means Last7Days.
	Window Window
}

func (o Options) window() Window {
	if o.Window <= 0 {
		return Last7Days
	}
	return o.Window
}

func (o Options) price() float64 {
	if o.HourlyUnitPrice <= 0 {
		return DefaultHourlyUnitPrice
	}
	return o.HourlyUnitPrice
}

// TopAddOn is one entry of the add-on popularity ranking.
type TopAddOn struct {
	AddOnID string `json:"addOnId"`
	Name    string `json:"name"`
	Count   int    `json:"count"`
}

// TrendBucket holds the figures of one day or week.
type TrendBucket struct {
	Key      string  `json:"key"`
	Attended int     `json:"attended"`
	Absent   int     `json:"absent"`
	Revenue  float64 `json:"revenue"`
}

// Summary is the KPI result for one organization and window.
type Summary struct {
	Attended                int     `json:"attended"`
	Absent                  int     `json:"absent"`
	ReportDays              int     `json:"reportDays"`
	AttendanceRate          float64 `json:"attendanceRate"`
	AverageAttendancePerDay float64 `json:"averageAttendancePerDay"`
	TotalSupportHours       float64 `json:"totalSupportHours"`
	AverageSupportTime      float64 `json:"averageSupportTime"`
	TotalRevenue            float64 `json:"totalRevenue"`
	TotalUnits              float64 `json:"totalUnits"`

	TopAddOns []TopAddOn    `json:"topAddOns"`
	Trend     []TrendBucket `json:"trend"`
}

// Attended is the aggregator's notion of attendance: both times recorded.
func Attended(cr models.ChildReport) bool {
	return cr.Arrival != "" && cr.Departure != ""
}

// Aggregate computes the Summary of reports in one pass. Add-on ids not
// found in addOns contribute neither value nor usage. Every figure is zero
// for an empty input.
func Aggregate(reports []models.DailyReport, addOns []models.AddOnMaster, opts Options) Summary {
	price := opts.price()
	master := make(map[string]models.AddOnMaster, len(addOns))
	for _, a := range addOns {
		master[a.AddOnID] = a
	}

	var (
		s          = Summary{ReportDays: len(reports), TopAddOns: []TopAddOn{}, Trend: []TrendBucket{}}
		addOnValue float64
		usage      []TopAddOn
		usageIdx   = map[string]int{}
		buckets    = map[string]*TrendBucket{}
	)

	for _, r := range reports {
		var bucket *TrendBucket
		if key, ok := opts.window().bucketKey(r.Date); ok {
			bucket = buckets[key]
			if bucket == nil {
				bucket = &TrendBucket{Key: key}
				buckets[key] = bucket
			}
		}

		for _, cr := range r.Children {
			if !Attended(cr) {
				s.Absent++
				if bucket != nil {
					bucket.Absent++
				}
				continue
			}
			s.Attended++

			hours := dailyreport.ComputeSupportHours(cr.Arrival, cr.Departure)
			rev := hours * price
			s.TotalSupportHours += hours

			for _, id := range cr.AddOns {
				a, ok := master[id]
				if !ok {
					continue
				}
				rev += float64(a.UnitValue)
				addOnValue += float64(a.UnitValue)
				if i, seen := usageIdx[id]; seen {
					usage[i].Count++
				} else {
					usageIdx[id] = len(usage)
					usage = append(usage, TopAddOn{AddOnID: id, Name: a.Name, Count: 1})
				}
			}

			s.TotalRevenue += rev
			if bucket != nil {
				bucket.Attended++
				bucket.Revenue += rev
			}
		}
	}

	if total := s.Attended + s.Absent; total > 0 {
		s.AttendanceRate = float64(s.Attended) / float64(total) * 100
	}
	if s.ReportDays > 0 {
		s.AverageAttendancePerDay = float64(s.Attended) / float64(s.ReportDays)
	}
	if s.Attended > 0 {
		s.AverageSupportTime = s.TotalSupportHours / float64(s.Attended)
	}
	s.TotalUnits = s.TotalSupportHours + addOnValue/100

	// Stable sort keeps first-encounter order among equal counts.
	sort.SliceStable(usage, func(i, j int) bool { return usage[i].Count > usage[j].Count })
	if len(usage) > topN {
		usage = usage[:topN]
	}
	s.TopAddOns = append(s.TopAddOns, usage...)

	for _, b := range buckets {
		s.Trend = append(s.Trend, *b)
	}
	sort.Slice(s.Trend, func(i, j int) bool { return s.Trend[i].Key < s.Trend[j].Key })

	return s
}

// DaySnapshot derives the stored Revenue figures of a single report.
// UserCount uses the aggregator's attendance rule.
func DaySnapshot(report models.DailyReport, addOns []models.AddOnMaster, hourlyUnitPrice float64) models.Revenue {
	s := Aggregate([]models.DailyReport{report}, addOns, Options{HourlyUnitPrice: hourlyUnitPrice, Window: Last7Days})
	return models.Revenue{
		RevenueID:          models.ReportID(report.OrgID, report.Date),
		OrgID:              report.OrgID,
		Date:               report.Date,
		TotalUnits:         s.TotalUnits,
		TotalRevenue:       s.TotalRevenue,
		UserCount:          s.Attended,
		AverageSupportTime: s.AverageSupportTime,
	}
}
