package kpi_test

import (
	"testing"
	"time"

	"github.com/dalemusser/welfarehub/internal/app/reporting/dailyreport"
	"github.com/dalemusser/welfarehub/internal/app/reporting/kpi"
	"github.com/dalemusser/welfarehub/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var masters = []models.AddOnMaster{
	{AddOnID: "addon-1", Name: "専門的支援加算", UnitValue: 41, IsBasic: true},
	{AddOnID: "addon-2", Name: "個別サポート加算Ⅰ", UnitValue: 108},
	{AddOnID: "addon-3", Name: "送迎加算", UnitValue: 54},
	{AddOnID: "addon-4", Name: "延長支援加算", UnitValue: 61},
}

func TestAggregate_WorkedExample(t *testing.T) {
	reports := []models.DailyReport{{
		OrgID: "demo-fc-org",
		Date:  "2024-12-17",
		Children: []models.ChildReport{
			{ChildID: "c1", Arrival: "09:30", Departure: "15:30", AddOns: []string{"addon-1"}},
		},
	}}
	s := kpi.Aggregate(reports, []models.AddOnMaster{{AddOnID: "addon-1", UnitValue: 41}}, kpi.Options{HourlyUnitPrice: 800})

	assert.Equal(t, 1, s.Attended)
	assert.Equal(t, 0, s.Absent)
	assert.InDelta(t, 100, s.AttendanceRate, 1e-9)
	assert.InDelta(t, 6.0, s.TotalSupportHours, 1e-9)
	assert.InDelta(t, 6.0, s.AverageSupportTime, 1e-9)
	assert.InDelta(t, 4841, s.TotalRevenue, 1e-9)
	assert.InDelta(t, 6.41, s.TotalUnits, 1e-9)
	assert.InDelta(t, 1, s.AverageAttendancePerDay, 1e-9)
	require.Len(t, s.TopAddOns, 1)
	assert.Equal(t, kpi.TopAddOn{AddOnID: "addon-1", Count: 1}, s.TopAddOns[0])
}

func TestAggregate_DefaultPrice(t *testing.T) {
	reports := []models.DailyReport{{Date: "2024-12-17", Children: []models.ChildReport{{ChildID: "c1", Arrival: "10:00", Departure: "11:00"}}}}
	s := kpi.Aggregate(reports, nil, kpi.Options{})
	assert.InDelta(t, kpi.DefaultHourlyUnitPrice, s.TotalRevenue, 1e-9)
}

func TestAggregate_Empty(t *testing.T) {
	for _, reports := range [][]models.DailyReport{nil, {}} {
		s := kpi.Aggregate(reports, masters, kpi.Options{Window: kpi.Last30Days})
		assert.Zero(t, s.AttendanceRate)
		assert.Zero(t, s.AverageSupportTime)
		assert.Zero(t, s.AverageAttendancePerDay)
		assert.Zero(t, s.TotalRevenue)
		assert.Zero(t, s.TotalUnits)
		assert.NotNil(t, s.TopAddOns)
		assert.Empty(t, s.TopAddOns)
		assert.NotNil(t, s.Trend)
		assert.Empty(t, s.Trend)
	}
}

func TestAggregate_ReportsWithNoChildren(t *testing.T) {
	s := kpi.Aggregate([]models.DailyReport{{Date: "2024-12-17"}}, masters, kpi.Options{})
	assert.Zero(t, s.AttendanceRate)
	assert.Zero(t, s.AverageAttendancePerDay)
	assert.Equal(t, 1, s.ReportDays)
}

// The editor keeps a child with only an arrival time as attended; the
// aggregator counts the same entry as absent.
func TestAttendanceDefinitionsDiffer(t *testing.T) {
	cr := models.ChildReport{ChildID: "c1", Arrival: "09:30"}

	assert.True(t, dailyreport.Attended(cr))
	assert.False(t, kpi.Attended(cr))

	persisted := dailyreport.Persisted([]models.ChildReport{cr})
	require.Len(t, persisted, 1, "editor retains the entry on save")

	s := kpi.Aggregate([]models.DailyReport{{Date: "2024-12-17", Children: persisted}}, nil, kpi.Options{})
	assert.Equal(t, 0, s.Attended)
	assert.Equal(t, 1, s.Absent)
	assert.Zero(t, s.AttendanceRate)
	assert.Zero(t, s.TotalRevenue)
}

func TestAggregate_TopAddOnsRankingAndTies(t *testing.T) {
	full := func(id string, addOns ...string) models.ChildReport {
		return models.ChildReport{ChildID: id, Arrival: "10:00", Departure: "12:00", AddOns: addOns}
	}
	reports := []models.DailyReport{
		{Date: "2024-12-16", Children: []models.ChildReport{
			full("a", "addon-4", "addon-3"),
			full("b", "addon-2"),
		}},
		{Date: "2024-12-17", Children: []models.ChildReport{
			full("a", "addon-2", "addon-1"),
			full("b", "addon-3"),
			full("c", "addon-unknown"),
			{ChildID: "d", Arrival: "10:00", AddOns: []string{"addon-1", "addon-1"}}, // absent: not counted
		}},
	}
	s := kpi.Aggregate(reports, masters, kpi.Options{})

	require.Len(t, s.TopAddOns, 3)
	// addon-3 and addon-2 both have 2; addon-3 was seen first.
	assert.Equal(t, "addon-3", s.TopAddOns[0].AddOnID)
	assert.Equal(t, 2, s.TopAddOns[0].Count)
	assert.Equal(t, "addon-2", s.TopAddOns[1].AddOnID)
	assert.Equal(t, 2, s.TopAddOns[1].Count)
	// addon-4 and addon-1 both have 1; addon-4 was seen first.
	assert.Equal(t, "addon-4", s.TopAddOns[2].AddOnID)
	assert.Equal(t, "延長支援加算", s.TopAddOns[2].Name)

	assert.Equal(t, 5, s.Attended)
	assert.Equal(t, 1, s.Absent)
	addOnValue := 61.0 + 54 + 108 + 108 + 41 + 54
	assert.InDelta(t, 10*800+addOnValue, s.TotalRevenue, 1e-9)
	assert.InDelta(t, 10+addOnValue/100, s.TotalUnits, 1e-9)
	assert.InDelta(t, 2.5, s.AverageAttendancePerDay, 1e-9)
}

func TestAggregate_DailyTrend(t *testing.T) {
	reports := []models.DailyReport{
		{Date: "2024-12-18", Children: []models.ChildReport{{ChildID: "a", Arrival: "10:00", Departure: "11:00"}, {ChildID: "b"}}},
		{Date: "2024-12-16", Children: []models.ChildReport{{ChildID: "a", Arrival: "10:00", Departure: "12:00", AddOns: []string{"addon-3"}}}},
	}
	s := kpi.Aggregate(reports, masters, kpi.Options{Window: kpi.Last7Days})

	require.Len(t, s.Trend, 2)
	assert.Equal(t, kpi.TrendBucket{Key: "2024-12-16", Attended: 1, Revenue: 1654}, s.Trend[0])
	assert.Equal(t, kpi.TrendBucket{Key: "2024-12-18", Attended: 1, Absent: 1, Revenue: 800}, s.Trend[1])
}

func TestAggregate_ZeroWindowIsLast7Days(t *testing.T) {
	reports := []models.DailyReport{
		{Date: "2024-12-18", Children: []models.ChildReport{{ChildID: "a", Arrival: "10:00", Departure: "11:00"}}},
		{Date: "2024-12-16", Children: []models.ChildReport{{ChildID: "a", Arrival: "10:00", Departure: "12:00"}}},
	}
	got := kpi.Aggregate(reports, masters, kpi.Options{})
	want := kpi.Aggregate(reports, masters, kpi.Options{Window: kpi.Last7Days})
	assert.Equal(t, want, got)
	require.Len(t, got.Trend, 2)
	assert.Equal(t, "2024-12-16", got.Trend[0].Key)
}

func TestAggregate_WeeklyTrendStartsSunday(t *testing.T) {
	one := []models.ChildReport{{ChildID: "a", Arrival: "10:00", Departure: "11:00"}}
	reports := []models.DailyReport{
		{Date: "2024-12-21", Children: one}, // Saturday -> week of 12-15
		{Date: "2024-12-15", Children: one}, // Sunday
		{Date: "2024-12-22", Children: one}, // Sunday -> new week
		{Date: "2024-12-10", Children: one}, // Tuesday -> week of 12-08
	}
	s := kpi.Aggregate(reports, nil, kpi.Options{Window: kpi.Last30Days})

	require.Len(t, s.Trend, 3)
	assert.Equal(t, "2024-12-08", s.Trend[0].Key)
	assert.Equal(t, "2024-12-15", s.Trend[1].Key)
	assert.Equal(t, 2, s.Trend[1].Attended)
	assert.Equal(t, "2024-12-22", s.Trend[2].Key)
}

func TestWindowRange(t *testing.T) {
	now := time.Date(2024, 12, 18, 15, 4, 5, 0, time.UTC)

	from, to := kpi.Last7Days.Range(now)
	assert.Equal(t, "2024-12-12", from)
	assert.Equal(t, "2024-12-18", to)

	from, to = kpi.Last30Days.Range(now)
	assert.Equal(t, "2024-11-19", from)
	assert.Equal(t, "2024-12-18", to)

	from, _ = kpi.Window(0).Range(now)
	assert.Equal(t, "2024-12-12", from)
}

func TestParseWindow(t *testing.T) {
	w, err := kpi.ParseWindow("")
	require.NoError(t, err)
	assert.Equal(t, kpi.Last7Days, w)

	w, err = kpi.ParseWindow("30")
	require.NoError(t, err)
	assert.Equal(t, kpi.Last30Days, w)

	_, err = kpi.ParseWindow("14")
	assert.Error(t, err)
	_, err = kpi.ParseWindow("week")
	assert.Error(t, err)
}

func TestDaySnapshot(t *testing.T) {
	report := models.DailyReport{
		OrgID: "demo-fc-org",
		Date:  "2024-12-17",
		Children: []models.ChildReport{
			{ChildID: "c1", Arrival: "09:30", Departure: "15:30", AddOns: []string{"addon-1"}},
			{ChildID: "c2", Arrival: "13:00"},
		},
	}
	rev := kpi.DaySnapshot(report, masters, 800)
	assert.Equal(t, "demo-fc-org_2024-12-17", rev.RevenueID)
	assert.Equal(t, 1, rev.UserCount)
	assert.InDelta(t, 4841, rev.TotalRevenue, 1e-9)
	assert.InDelta(t, 6.41, rev.TotalUnits, 1e-9)
	assert.InDelta(t, 6.0, rev.AverageSupportTime, 1e-9)
}
