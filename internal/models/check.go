package models

// CheckKey identifies one checklist item within a day. Check rows are keyed
// by (day, section, item); within a loaded day the section and item pair is
// enough.
type CheckKey struct {
	Section string
	Item    string
}
