package cli

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/dalemusser/welfarehub/internal/app/seed"
	"github.com/dalemusser/welfarehub/internal/domain/models"
	"github.com/dalemusser/welfarehub/internal/testutil"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSettings_EnvAndFlags(t *testing.T) {
	t.Setenv("WELFAREHUB_MONGO_DATABASE", "from_env")
	t.Setenv("WELFAREHUB_HOURLY_UNIT_PRICE", "950")

	v := viper.New()
	root := NewRootCmd(v, zap.NewNop())

	s := settingsFrom(v)
	assert.Equal(t, "from_env", s.MongoDatabase)
	assert.Equal(t, 950.0, s.HourlyUnitPrice)
	assert.Equal(t, "mongodb://localhost:27017", s.MongoURI)

	require.NoError(t, root.PersistentFlags().Set("mongo_database", "from_flag"))
	assert.Equal(t, "from_flag", settingsFrom(v).MongoDatabase)
}

func TestKPICmd_RequiresOrg(t *testing.T) {
	root := NewRootCmd(viper.New(), zap.NewNop())
	root.SetArgs([]string{"kpi"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "org")
}

func seededRepos(t *testing.T) (*testutil.MemDailyReports, *testutil.MemRepo[models.AddOnMaster, models.AddOnPatch]) {
	t.Helper()
	ctx := t.Context()
	reports := testutil.NewMemDailyReports()
	for _, r := range seed.DailyReports {
		_, err := reports.Upsert(ctx, r)
		require.NoError(t, err)
	}
	addOns := testutil.NewMemAddOns()
	for _, a := range seed.AddOns {
		_, err := addOns.Create(ctx, a)
		require.NoError(t, err)
	}
	return reports, addOns
}

func TestKPICmd_Run(t *testing.T) {
	reports, addOns := seededRepos(t)

	kc := &kpiCmd{org: "demo-fc-org", window: "7", to: "2024-12-18"}
	var out bytes.Buffer
	require.NoError(t, kc.run(t.Context(), reports, addOns, 800, time.Now(), &out))

	var got kpiOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "2024-12-12", got.From)
	assert.Equal(t, "2024-12-18", got.To)
	assert.Equal(t, 7, got.Window)
	assert.Equal(t, 2, got.Summary.ReportDays)
	assert.Equal(t, 5, got.Summary.Attended)
	assert.Equal(t, 1, got.Summary.Absent)
}

func TestKPICmd_RunRejectsBadInput(t *testing.T) {
	reports, addOns := seededRepos(t)
	var out bytes.Buffer

	kc := &kpiCmd{org: "demo-fc-org", window: "14"}
	assert.Error(t, kc.run(t.Context(), reports, addOns, 800, time.Now(), &out))

	kc = &kpiCmd{org: "demo-fc-org", window: "7", to: "18/12/2024"}
	assert.Error(t, kc.run(t.Context(), reports, addOns, 800, time.Now(), &out))
	assert.Zero(t, out.Len())
}
