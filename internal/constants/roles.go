package constants

import (
	"database/sql/driver"
	"fmt"
)

// RoleCategory mirrors the role_key column values. It is a closed set derived
// from free-text role labels; RoleNone marks an unclassified member.
type RoleCategory string

const (
	RoleChiefAdvisor          RoleCategory = "chief-advisor"
	RoleExecutiveAdvisor      RoleCategory = "executive-advisor"
	RoleAdvisor               RoleCategory = "advisor"
	RoleCounselor             RoleCategory = "counselor"
	RoleChapterAdvisor        RoleCategory = "chapter-advisor"
	RoleChapterCoAdvisor      RoleCategory = "chapter-co-advisor"
	RoleChairperson           RoleCategory = "chairperson"
	RoleViceChairperson       RoleCategory = "vice-chairperson"
	RoleGeneralSecretary      RoleCategory = "general-secretary"
	RoleJointGeneralSecretary RoleCategory = "joint-general-secretary"
	RoleTreasurer             RoleCategory = "treasurer"
	RoleWebmaster             RoleCategory = "webmaster"
	RoleChapterChair          RoleCategory = "chapter-chair"
	RoleChapterViceChair      RoleCategory = "chapter-vice-chair"
	RoleChapterSecretary      RoleCategory = "chapter-secretary"
	RoleChapterJointSecretary RoleCategory = "chapter-joint-secretary"
	RoleChapterTreasurer      RoleCategory = "chapter-treasurer"
	RoleChapterWebmaster      RoleCategory = "chapter-webmaster"
	RoleChapterCommittee      RoleCategory = "chapter-committee"
	RoleNone                  RoleCategory = "none"
)

// Stringer – convenient for fmt / logs
func (r RoleCategory) String() string { return string(r) }

/* ---------- DB adapters so sqlx (or database/sql) scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (r *RoleCategory) Scan(src interface{}) error {
	if src == nil {
		*r = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*r = RoleCategory(v)
	case []byte:
		*r = RoleCategory(v)
	default:
		return fmt.Errorf("RoleCategory: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (r RoleCategory) Value() (driver.Value, error) { return string(r), nil }

// MainAdvisorOrder ranks branch-level advisory roles for the team page.
var MainAdvisorOrder = []RoleCategory{
	RoleChiefAdvisor,
	RoleExecutiveAdvisor,
	RoleAdvisor,
	RoleCounselor,
}

// StudentRoleOrder ranks branch executive-committee roles. Category rank wins
// over the numeric priority field; priority only breaks ties inside a category.
var StudentRoleOrder = []RoleCategory{
	RoleChairperson,
	RoleViceChairperson,
	RoleGeneralSecretary,
	RoleJointGeneralSecretary,
	RoleTreasurer,
	RoleWebmaster,
}

// ChapterAdvisorOrder ranks advisory roles inside a chapter group. Members in
// one of these categories form the group's advisors list; everyone else lands
// in the committee list.
var ChapterAdvisorOrder = []RoleCategory{
	RoleChapterAdvisor,
	RoleChapterCoAdvisor,
	RoleCounselor,
	RoleAdvisor,
}

// Affiliation splits members between the main branch body and its chapters.
type Affiliation string

const (
	AffiliationMain    Affiliation = "main"
	AffiliationChapter Affiliation = "chapter"
)

func (a Affiliation) String() string { return string(a) }

// Scan implements the sql.Scanner interface
func (a *Affiliation) Scan(src interface{}) error {
	if src == nil {
		*a = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*a = Affiliation(v)
	case []byte:
		*a = Affiliation(v)
	default:
		return fmt.Errorf("Affiliation: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (a Affiliation) Value() (driver.Value, error) { return string(a), nil }

// FallbackChapterName labels the group collecting chapter members whose
// chapter field is empty after trimming.
const FallbackChapterName = "IEEE Student Branch"
