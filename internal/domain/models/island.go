package models

// Island is an island record. RegencyCode is nil for islands that belong
// to no regency. Latitude and Longitude are derived from Coordinate.
type Island struct {
	Record
	Code             string  `json:"code"`
	Coordinate       string  `json:"coordinate"`
	IsOutermostSmall bool    `json:"isOutermostSmall"`
	IsPopulated      bool    `json:"isPopulated"`
	Name             string  `json:"name"`
	RegencyCode      *string `json:"regencyCode"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
}

// IslandParent lists an island's ancestors; both are nil without a regency.
type IslandParent struct {
	Regency  *Regency  `json:"regency"`
	Province *Province `json:"province"`
}

// IslandDetail is an island with its ancestors resolved.
type IslandDetail struct {
	Island
	Parent IslandParent `json:"parent"`
}

func (d *IslandDetail) ClearInternalID() {
	d.Island.ClearInternalID()
	if d.Parent.Regency != nil {
		d.Parent.Regency.ClearInternalID()
	}
	if d.Parent.Province != nil {
		d.Parent.Province.ClearInternalID()
	}
}
