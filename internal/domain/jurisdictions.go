package domain

import "strings"

// Jurisdictions lists the 50 states plus the District of Columbia
var Jurisdictions = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
	"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
	"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
	"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
	"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY", "DC",
}

// IsJurisdiction reports whether code is a recognized US jurisdiction code
func IsJurisdiction(code string) bool {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, j := range Jurisdictions {
		if j == code {
			return true
		}
	}
	return false
}
