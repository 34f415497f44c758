package pages

import (
	"testing"

	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/constants"
	gormModels "github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/models/gorm"
)

func mainMember(name, role string, priority int) gormModels.TeamMember {
	return gormModels.TeamMember{
		ID:          name,
		Name:        name,
		Role:        role,
		RoleKey:     constants.RoleNone,
		Priority:    priority,
		Affiliation: constants.AffiliationMain,
	}
}

func chapterMember(name, role, chapter string, priority int) gormModels.TeamMember {
	m := mainMember(name, role, priority)
	m.Affiliation = constants.AffiliationChapter
	m.Chapter = chapter
	return m
}

func TestBuildTeamPage_Sections(t *testing.T) {
	members := []gormModels.TeamMember{
		mainMember("webmaster", "Webmaster", 1),
		mainMember("advisor", "Branch Advisor", 1),
		mainMember("chair", "Chairperson", 1),
		mainMember("chief", "Chief Advisor", 1),
		chapterMember("cs-chair", "Chapter Chair", "IEEE Computer Society", 1),
	}

	page := BuildTeamPage(members)

	// Advisor categories land in Advisors, ranked by the advisor order.
	if len(page.Advisors) != 2 {
		t.Fatalf("advisors = %d, want 2", len(page.Advisors))
	}
	if page.Advisors[0].Name != "chief" || page.Advisors[1].Name != "advisor" {
		t.Errorf("advisor order: %q, %q", page.Advisors[0].Name, page.Advisors[1].Name)
	}

	// Everyone else from the main branch is an executive, ranked by the
	// student role order.
	if len(page.Executives) != 2 {
		t.Fatalf("executives = %d, want 2", len(page.Executives))
	}
	if page.Executives[0].Name != "chair" || page.Executives[1].Name != "webmaster" {
		t.Errorf("executive order: %q, %q", page.Executives[0].Name, page.Executives[1].Name)
	}

	// Chapter members never appear in the main sections.
	if len(page.Chapters) != 1 {
		t.Fatalf("chapters = %d, want 1", len(page.Chapters))
	}
	if page.Chapters[0].Slug != "ieee-computer-society" {
		t.Errorf("chapter slug = %q", page.Chapters[0].Slug)
	}
}

func TestBuildTeamPage_ChapterThemes(t *testing.T) {
	members := []gormModels.TeamMember{
		chapterMember("cs", "Chapter Chair", "IEEE Computer Society", 1),
		chapterMember("other", "Chapter Chair", "Unlisted Chapter", 1),
	}

	page := BuildTeamPage(members)
	if len(page.Chapters) != 2 {
		t.Fatalf("chapters = %d, want 2", len(page.Chapters))
	}

	var cs, other ChapterView
	for _, c := range page.Chapters {
		switch c.Slug {
		case "ieee-computer-society":
			cs = c
		case "unlisted-chapter":
			other = c
		}
	}

	if cs.Theme.Accent == "" || cs.Theme.Accent == other.Theme.Accent {
		t.Errorf("known chapter got no distinct theme: %+v vs %+v", cs.Theme, other.Theme)
	}
	if other.Theme.Accent == "" {
		t.Error("unlisted chapter got no fallback theme")
	}
}

func TestBuildTeamPage_Empty(t *testing.T) {
	page := BuildTeamPage(nil)
	if len(page.Advisors) != 0 || len(page.Executives) != 0 || len(page.Chapters) != 0 {
		t.Errorf("empty input produced non-empty page: %+v", page)
	}
}

func TestBuildTeamPage_UnclassifiedGoesToExecutives(t *testing.T) {
	members := []gormModels.TeamMember{
		mainMember("mystery", "Volunteer Coordinator", 3),
		mainMember("treasurer", "Treasurer", 1),
	}

	page := BuildTeamPage(members)
	if len(page.Advisors) != 0 {
		t.Fatalf("unexpected advisors: %+v", page.Advisors)
	}
	// Treasurer ranks in the student order; unclassified members sort after.
	if len(page.Executives) != 2 || page.Executives[0].Name != "treasurer" {
		t.Errorf("unexpected executive order: %+v", page.Executives)
	}
}
