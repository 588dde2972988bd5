package models

type District struct {
	Record
	Code        string `json:"code"`
	Name        string `json:"name"`
	RegencyCode string `json:"regencyCode"`
}

// DistrictParent lists a district's ancestors.
type DistrictParent struct {
	Regency  *Regency  `json:"regency"`
	Province *Province `json:"province"`
}

// DistrictDetail is a district with its ancestors resolved.
type DistrictDetail struct {
	District
	Parent DistrictParent `json:"parent"`
}

func (d *DistrictDetail) ClearInternalID() {
	d.District.ClearInternalID()
	if d.Parent.Regency != nil {
		d.Parent.Regency.ClearInternalID()
	}
	if d.Parent.Province != nil {
		d.Parent.Province.ClearInternalID()
	}
}
