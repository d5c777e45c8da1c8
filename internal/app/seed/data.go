// internal/app/seed/data.go
package seed

import "github.com/dalemusser/welfarehub/internal/domain/models"

// Organizations of the demo data set. hq-org and demo-fc-org are the
// organizations of the demo accounts.
var Organizations = []models.Organization{
	{OrgID: "hq-org", Name: "本部", Prefecture: "東京都", Address: "東京都渋谷区○○1-2-3", FacilityType: models.FacilityChildDevelopment, StartDate: "2020-04-01"},
	{OrgID: "demo-fc-org", Name: "デモFC事業所", Prefecture: "神奈川県", Address: "神奈川県横浜市○○2-3-4", FacilityType: models.FacilityAfterSchool, StartDate: "2021-04-01"},
	{OrgID: "fc-org-2", Name: "サンプルFC事業所", Prefecture: "埼玉県", Address: "埼玉県さいたま市○○3-4-5", FacilityType: models.FacilityEmploymentB, StartDate: "2022-04-01"},
}

// Users of the demo data set. Their password is authn.DemoPassword.
var Users = []models.User{
	{UID: "demo-hq-user", Email: "demo@hq.com", Role: models.RoleHQ, OrgID: "hq-org", IsActive: true},
	{UID: "demo-fc-user", Email: "demo@fc.com", Role: models.RoleFC, OrgID: "demo-fc-org", IsActive: true},
}

var AddOns = []models.AddOnMaster{
	{AddOnID: "addon-1", Name: "専門的支援加算", UnitValue: 41, IsBasic: true},
	{AddOnID: "addon-2", Name: "個別サポート加算Ⅰ", UnitValue: 108},
	{AddOnID: "addon-3", Name: "送迎加算", UnitValue: 54},
	{AddOnID: "addon-4", Name: "延長支援加算", UnitValue: 61},
	{AddOnID: "addon-5", Name: "関係機関連携加算", UnitValue: 200},
}

var Children = []models.Child{
	{ChildID: "child-1", OrgID: "demo-fc-org", Name: "田中 太郎", DefaultPickup: true, DefaultDrop: true},
	{ChildID: "child-2", OrgID: "demo-fc-org", Name: "佐藤 花音", DefaultDrop: true},
	{ChildID: "child-3", OrgID: "demo-fc-org", Name: "鈴木 健一", DefaultPickup: true, DefaultDrop: true},
}

// DailyReports are stored as written, including the absent child-3 entry
// on 2024-12-18.
var DailyReports = []models.DailyReport{
	{
		OrgID: "demo-fc-org",
		Date:  "2024-12-18",
		Children: []models.ChildReport{
			{ChildID: "child-1", Arrival: "09:00", Departure: "15:00", Pickup: true, Drop: true, AddOns: []string{"addon-1", "addon-3"}},
			{ChildID: "child-2", Arrival: "10:00", Departure: "14:30", Drop: true, AddOns: []string{"addon-2"}},
			{ChildID: "child-3", AddOns: []string{}},
		},
	},
	{
		OrgID: "demo-fc-org",
		Date:  "2024-12-17",
		Children: []models.ChildReport{
			{ChildID: "child-1", Arrival: "09:30", Departure: "15:30", Pickup: true, Drop: true, AddOns: []string{"addon-1", "addon-3", "addon-4"}},
			{ChildID: "child-2", Arrival: "09:00", Departure: "15:00", Pickup: true, Drop: true, AddOns: []string{"addon-2", "addon-3"}},
			{ChildID: "child-3", Arrival: "10:00", Departure: "16:00", Pickup: true, Drop: true, AddOns: []string{"addon-1", "addon-3", "addon-4"}},
		},
	},
}
