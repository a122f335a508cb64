package models

type OfficialRole string

const (
	OfficialReferee    OfficialRole = "REF"
	OfficialDownJudge  OfficialRole = "DJ"
	OfficialFieldJudge OfficialRole = "FJ"
	OfficialSideJudge  OfficialRole = "SJ"
)

// OfficialAssignment records a member of the officiating crew for a match.
type OfficialAssignment struct {
	ID            int          `json:"id" db:"id"`
	MatchID       int          `json:"match_id" db:"match_id"`
	Role          OfficialRole `json:"role" db:"role"`
	Name          string       `json:"name" db:"name"`
	LicenseNumber string       `json:"license_number" db:"license_number"`
}
