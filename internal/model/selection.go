package model

import "strings"

// OutputSelection remembers the output extension and sample format index the
// option tables were last loaded for.
type OutputSelection struct {
	Ext         string
	FormatIndex int
}

// NewOutputSelection creates an empty selection
func NewOutputSelection() *OutputSelection {
	s := &OutputSelection{}
	s.Reset()
	return s
}

// Reset forgets the sample format index
func (s *OutputSelection) Reset() {
	s.FormatIndex = -1
}

// ExtensionChanged records ext and reports whether the sample format table has
// to be reloaded. Blank extensions never trigger a reload.
func (s *OutputSelection) ExtensionChanged(ext string) bool {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" || ext == s.Ext {
		return false
	}
	s.Ext = ext
	s.Reset()
	return true
}

// FormatChanged records index and reports whether the dependent tables
// (bit depth, rate, channels) have to be reloaded.
func (s *OutputSelection) FormatChanged(index int) bool {
	if index == s.FormatIndex {
		return false
	}
	s.FormatIndex = index
	return true
}
