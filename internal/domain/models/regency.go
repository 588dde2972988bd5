package models

type Regency struct {
	Record
	Code         string `json:"code"`
	Name         string `json:"name"`
	ProvinceCode string `json:"provinceCode"`
}

// RegencyParent lists a regency's ancestors.
type RegencyParent struct {
	Province *Province `json:"province"`
}

// RegencyDetail is a regency with its ancestors resolved.
type RegencyDetail struct {
	Regency
	Parent RegencyParent `json:"parent"`
}

func (d *RegencyDetail) ClearInternalID() {
	d.Regency.ClearInternalID()
	if d.Parent.Province != nil {
		d.Parent.Province.ClearInternalID()
	}
}
