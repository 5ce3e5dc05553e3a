package models

// TypeOption is one entry of a code→label dictionary. Dictionaries are
// grouped by name (org-type, app-type, ...) and resolved client-side.
type TypeOption struct {
	ID    uint64 `gorm:"primaryKey" json:"-"`
	Group string `gorm:"size:50;index;not null" json:"-"`
	Code  int    `gorm:"not null" json:"code"`
	Value string `gorm:"size:200;not null" json:"value"`
	Sort  int    `json:"-"`
}
