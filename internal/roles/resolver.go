package roles

import (
	"strings"

	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/constants"
)

// advisorMarkers covers both spellings that show up in role labels.
var advisorMarkers = []string{"advisor", "adviser"}

// coAdvisorMarkers must be tested before the plain advisor markers.
var coAdvisorMarkers = []string{"co-advisor", "co advisor", "co-adviser", "co adviser"}

// counselorMarkers is the full set of spellings accepted in stored role
// labels. All of them are live data; do not prune.
var counselorMarkers = []string{
	"counselor",
	"counsellor",
	"councillor",
	"counsilor",
	"councellor",
	"councelor",
	"councilor",
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

func hasAdvisorMarker(s string) bool   { return containsAny(s, advisorMarkers) }
func hasCoAdvisorMarker(s string) bool { return containsAny(s, coAdvisorMarkers) }
func hasCounselorMarker(s string) bool { return containsAny(s, counselorMarkers) }

// chapterQualified reports whether the label ties the role to a chapter or
// affinity group rather than the main branch body.
func chapterQualified(s string) bool {
	return strings.Contains(s, "chapter") || strings.Contains(s, "affinity")
}

// rule is one entry in the classification table. When chapter is non-empty
// and the label is chapter-qualified, chapter wins over main.
type rule struct {
	match   func(s string) bool
	main    constants.RoleCategory
	chapter constants.RoleCategory
}

// rules is evaluated top-down, first match wins. The order encodes tie-break
// priority between overlapping markers ("Chief Advisor" must not fall through
// to the plain advisor rule) and must stay exactly as listed.
var rules = []rule{
	{
		match: func(s string) bool { return strings.Contains(s, "chief") && hasAdvisorMarker(s) },
		main:  constants.RoleChiefAdvisor,
	},
	{
		match: func(s string) bool { return strings.Contains(s, "executive") && hasAdvisorMarker(s) },
		main:  constants.RoleExecutiveAdvisor,
	},
	{
		match: hasCoAdvisorMarker,
		main:  constants.RoleChapterCoAdvisor,
	},
	{
		match: func(s string) bool { return hasAdvisorMarker(s) && hasCounselorMarker(s) },
		main:  constants.RoleCounselor,
	},
	{
		match:   hasAdvisorMarker,
		main:    constants.RoleAdvisor,
		chapter: constants.RoleChapterAdvisor,
	},
	{
		match: hasCounselorMarker,
		main:  constants.RoleCounselor,
	},
	{
		match: func(s string) bool {
			return (strings.Contains(s, "chairperson") || strings.Contains(s, "chair")) &&
				strings.Contains(s, "vice")
		},
		main:    constants.RoleViceChairperson,
		chapter: constants.RoleChapterViceChair,
	},
	{
		match:   func(s string) bool { return strings.Contains(s, "chairperson") || strings.Contains(s, "chair") },
		main:    constants.RoleChairperson,
		chapter: constants.RoleChapterChair,
	},
	{
		match:   func(s string) bool { return strings.Contains(s, "vice chair") },
		main:    constants.RoleViceChairperson,
		chapter: constants.RoleChapterViceChair,
	},
	{
		match: func(s string) bool {
			return strings.Contains(s, "general secretary") && strings.Contains(s, "joint")
		},
		main:    constants.RoleJointGeneralSecretary,
		chapter: constants.RoleChapterJointSecretary,
	},
	{
		match: func(s string) bool {
			return strings.Contains(s, "general secretary") || strings.Contains(s, "secretary")
		},
		main:    constants.RoleGeneralSecretary,
		chapter: constants.RoleChapterSecretary,
	},
	{
		match:   func(s string) bool { return strings.Contains(s, "treasurer") },
		main:    constants.RoleTreasurer,
		chapter: constants.RoleChapterTreasurer,
	},
	{
		match:   func(s string) bool { return strings.Contains(s, "web") && strings.Contains(s, "master") },
		main:    constants.RoleWebmaster,
		chapter: constants.RoleChapterWebmaster,
	},
	{
		match: func(s string) bool { return strings.Contains(s, "committee") },
		main:  constants.RoleChapterCommittee,
	},
}

// ResolveRoleKey maps a free-text role label plus an optional explicit
// override to a role category. An explicit override other than "none" is
// returned verbatim, even when it is not a recognized category; consumers
// sort unknown categories after the ordered ones. The function is pure and
// total over any string input; unmatched labels resolve to RoleNone.
func ResolveRoleKey(role string, roleKey constants.RoleCategory) constants.RoleCategory {
	if roleKey != "" && roleKey != constants.RoleNone {
		return roleKey
	}

	s := strings.ToLower(role)
	for _, ru := range rules {
		if !ru.match(s) {
			continue
		}
		if ru.chapter != "" && chapterQualified(s) {
			return ru.chapter
		}
		return ru.main
	}
	return constants.RoleNone
}

// OrderRank returns the position of cat within order, or len(order) when the
// category is not listed, so unlisted categories sort after every listed one.
func OrderRank(order []constants.RoleCategory, cat constants.RoleCategory) int {
	for i, c := range order {
		if c == cat {
			return i
		}
	}
	return len(order)
}
