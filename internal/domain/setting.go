package domain

// Setting is a single key/value configuration row, e.g. the building name
// shown on every dashboard.
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

const SettingBuildingName = "building_name"
