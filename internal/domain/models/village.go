package models

type Village struct {
	Record
	Code         string `json:"code"`
	Name         string `json:"name"`
	DistrictCode string `json:"districtCode"`
}

// VillageParent lists a village's ancestors.
type VillageParent struct {
	District *District `json:"district"`
	Regency  *Regency  `json:"regency"`
	Province *Province `json:"province"`
}

// VillageDetail is a village with its ancestors resolved.
type VillageDetail struct {
	Village
	Parent VillageParent `json:"parent"`
}

func (d *VillageDetail) ClearInternalID() {
	d.Village.ClearInternalID()
	if d.Parent.District != nil {
		d.Parent.District.ClearInternalID()
	}
	if d.Parent.Regency != nil {
		d.Parent.Regency.ClearInternalID()
	}
	if d.Parent.Province != nil {
		d.Parent.Province.ClearInternalID()
	}
}
