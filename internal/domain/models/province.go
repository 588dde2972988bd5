package models

type Province struct {
	Record
	Code string `json:"code"`
	Name string `json:"name"`
}
