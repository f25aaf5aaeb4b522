package domain

// ThemeOfDay is a daily posting theme. Its identifier is the "MMDD" day it
// belongs to ("0101".."1231"), not a uuid: there is at most one theme per
// calendar day and lookups key off today's date.
type ThemeOfDay struct {
	ID       string
	Name     string
	ImageURL string
}
