package teams

import (
	"sort"
	"strings"

	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/common"
	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/constants"
	gormModels "github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/models/gorm"
	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/roles"
)

// ChapterGroup is the render-ready view of one chapter: advisors ordered by
// the chapter advisor role order, the remaining committee by descending
// priority, and the full member list by descending priority.
type ChapterGroup struct {
	Name      string                  `json:"name"`
	Slug      string                  `json:"slug"`
	Advisors  []gormModels.TeamMember `json:"advisors"`
	Committee []gormModels.TeamMember `json:"committee"`
	Members   []gormModels.TeamMember `json:"members"`
}

// SortByRoleOrder sorts members in place: categories appearing in order rank
// by their index and come before any category not listed; within a category,
// higher priority first. The sort is stable, so input order is the final
// tie-break.
func SortByRoleOrder(members []gormModels.TeamMember, order []constants.RoleCategory) {
	sort.SliceStable(members, func(i, j int) bool {
		ri := roles.OrderRank(order, roles.ResolveRoleKey(members[i].Role, members[i].RoleKey))
		rj := roles.OrderRank(order, roles.ResolveRoleKey(members[j].Role, members[j].RoleKey))
		if ri != rj {
			return ri < rj
		}
		return members[i].Priority > members[j].Priority
	})
}

// SortByPriority sorts members in place by descending priority, stable.
func SortByPriority(members []gormModels.TeamMember) {
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Priority > members[j].Priority
	})
}

// GroupChapterMembers partitions chapter-affiliated members into named
// groups. Group keys are the trimmed chapter names, exactly as stored:
// differing case or interior whitespace still produces distinct groups
// (operator-curated data; see the grouping tests before changing this).
// Empty names after trimming collapse into one fallback group. Groups come
// back sorted by name.
func GroupChapterMembers(members []gormModels.TeamMember) []ChapterGroup {
	byName := make(map[string][]gormModels.TeamMember)
	for _, m := range members {
		if m.Affiliation != constants.AffiliationChapter {
			continue
		}
		name := strings.TrimSpace(m.Chapter)
		if name == "" {
			name = constants.FallbackChapterName
		}
		byName[name] = append(byName[name], m)
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]ChapterGroup, 0, len(names))
	for _, name := range names {
		groups = append(groups, buildGroup(name, byName[name]))
	}
	return groups
}

func buildGroup(name string, members []gormModels.TeamMember) ChapterGroup {
	var advisors, committee []gormModels.TeamMember
	for _, m := range members {
		cat := roles.ResolveRoleKey(m.Role, m.RoleKey)
		if roles.OrderRank(constants.ChapterAdvisorOrder, cat) < len(constants.ChapterAdvisorOrder) {
			advisors = append(advisors, m)
		} else {
			committee = append(committee, m)
		}
	}

	SortByRoleOrder(advisors, constants.ChapterAdvisorOrder)
	SortByPriority(committee)

	all := make([]gormModels.TeamMember, len(members))
	copy(all, members)
	SortByPriority(all)

	return ChapterGroup{
		Name:      name,
		Slug:      common.Slugify(name),
		Advisors:  advisors,
		Committee: committee,
		Members:   all,
	}
}
