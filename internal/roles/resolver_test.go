package roles

import (
	"testing"

	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/constants"
)

func TestResolveRoleKey_Labels(t *testing.T) {
	tests := []struct {
		name string
		role string
		want constants.RoleCategory
	}{
		{"chief advisor", "Chief Advisor", constants.RoleChiefAdvisor},
		{"chief adviser spelling", "Chief Adviser", constants.RoleChiefAdvisor},
		{"executive advisor", "Executive Advisor", constants.RoleExecutiveAdvisor},
		{"co-advisor", "Chapter Co-Advisor", constants.RoleChapterCoAdvisor},
		{"co advisor spaced", "Co Advisor, WIE AG", constants.RoleChapterCoAdvisor},
		{"advisor plain", "Branch Advisor", constants.RoleAdvisor},
		{"advisor with chapter marker", "CS Chapter Advisor", constants.RoleChapterAdvisor},
		{"advisor with affinity marker", "WIE Affinity Group Advisor", constants.RoleChapterAdvisor},
		{"advisor and counselor together", "Advisor & Counselor", constants.RoleCounselor},
		{"counselor", "Branch Counselor", constants.RoleCounselor},
		{"chairperson", "Chairperson", constants.RoleChairperson},
		{"chair short form", "Chair", constants.RoleChairperson},
		{"vice chairperson", "Vice Chairperson", constants.RoleViceChairperson},
		{"chapter chair", "Chapter Chair", constants.RoleChapterChair},
		{"chapter vice chair", "Chapter Vice Chair", constants.RoleChapterViceChair},
		{"general secretary", "General Secretary", constants.RoleGeneralSecretary},
		{"joint general secretary", "Joint General Secretary", constants.RoleJointGeneralSecretary},
		{"chapter secretary", "CS Chapter Secretary", constants.RoleChapterSecretary},
		{"chapter joint secretary", "Joint General Secretary, RAS Chapter", constants.RoleChapterJointSecretary},
		{"treasurer", "Treasurer", constants.RoleTreasurer},
		{"chapter treasurer", "PES Chapter Treasurer", constants.RoleChapterTreasurer},
		{"webmaster", "Webmaster", constants.RoleWebmaster},
		{"web master spaced", "Web Master", constants.RoleWebmaster},
		{"chapter webmaster", "CS Chapter Webmaster", constants.RoleChapterWebmaster},
		{"committee", "Executive Committee Member", constants.RoleChapterCommittee},
		{"unrecognized", "Volunteer Coordinator", constants.RoleNone},
		{"empty", "", constants.RoleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveRoleKey(tt.role, constants.RoleNone)
			if got != tt.want {
				t.Errorf("ResolveRoleKey(%q) = %q, want %q", tt.role, got, tt.want)
			}
		})
	}
}

func TestResolveRoleKey_CounselorSpellings(t *testing.T) {
	spellings := []string{
		"Counselor", "Counsellor", "Councillor", "Counsilor",
		"Councellor", "Councelor", "Councilor",
	}
	for _, s := range spellings {
		if got := ResolveRoleKey(s, constants.RoleNone); got != constants.RoleCounselor {
			t.Errorf("ResolveRoleKey(%q) = %q, want %q", s, got, constants.RoleCounselor)
		}
	}
}

func TestResolveRoleKey_ExplicitOverride(t *testing.T) {
	// An override wins verbatim, even for labels that classify differently.
	if got := ResolveRoleKey("Chairperson", constants.RoleTreasurer); got != constants.RoleTreasurer {
		t.Errorf("override ignored: got %q", got)
	}

	// Even an unrecognized override is returned as-is.
	if got := ResolveRoleKey("Chairperson", "mystery-role"); got != "mystery-role" {
		t.Errorf("unrecognized override not returned verbatim: got %q", got)
	}

	// The sentinel and the empty string both mean "unset".
	if got := ResolveRoleKey("Chairperson", constants.RoleNone); got != constants.RoleChairperson {
		t.Errorf("sentinel treated as override: got %q", got)
	}
	if got := ResolveRoleKey("Chairperson", ""); got != constants.RoleChairperson {
		t.Errorf("empty roleKey treated as override: got %q", got)
	}
}

func TestResolveRoleKey_FirstMatchWins(t *testing.T) {
	// "Chief" outranks the bare advisor rule even with chapter qualification.
	if got := ResolveRoleKey("Chief Advisor, CS Chapter", constants.RoleNone); got != constants.RoleChiefAdvisor {
		t.Errorf("chief rule lost to a later rule: got %q", got)
	}

	// The co-advisor rule outranks counselor pairing and plain advisor.
	if got := ResolveRoleKey("Co-Advisor and Counsellor", constants.RoleNone); got != constants.RoleChapterCoAdvisor {
		t.Errorf("co-advisor rule lost to a later rule: got %q", got)
	}

	// "Vice Chairperson" must not classify as plain chairperson.
	if got := ResolveRoleKey("Vice Chairperson", constants.RoleNone); got != constants.RoleViceChairperson {
		t.Errorf("vice rule lost to chair rule: got %q", got)
	}
}

func TestResolveRoleKey_Total(t *testing.T) {
	known := map[constants.RoleCategory]bool{
		constants.RoleChiefAdvisor: true, constants.RoleExecutiveAdvisor: true,
		constants.RoleAdvisor: true, constants.RoleCounselor: true,
		constants.RoleChapterAdvisor: true, constants.RoleChapterCoAdvisor: true,
		constants.RoleChairperson: true, constants.RoleViceChairperson: true,
		constants.RoleGeneralSecretary: true, constants.RoleJointGeneralSecretary: true,
		constants.RoleTreasurer: true, constants.RoleWebmaster: true,
		constants.RoleChapterChair: true, constants.RoleChapterViceChair: true,
		constants.RoleChapterSecretary: true, constants.RoleChapterJointSecretary: true,
		constants.RoleChapterTreasurer: true, constants.RoleChapterWebmaster: true,
		constants.RoleChapterCommittee: true, constants.RoleNone: true,
	}

	inputs := []string{
		"", " ", "\t\n", "ADVISOR", "aDvIsEr", "chair chair chair",
		"vice", "secretary treasurer webmaster", "चेयरपर्सन", "🙂",
		"co advisor chief executive counselor chapter", "master of web",
		"committee committee", "advisor-adviser", "x", "affinity",
	}
	for _, in := range inputs {
		got := ResolveRoleKey(in, constants.RoleNone)
		if !known[got] {
			t.Errorf("ResolveRoleKey(%q) returned %q, not in the closed category set", in, got)
		}
		// Deterministic: same input, same output.
		if again := ResolveRoleKey(in, constants.RoleNone); again != got {
			t.Errorf("ResolveRoleKey(%q) not deterministic: %q vs %q", in, got, again)
		}
	}
}

func TestOrderRank(t *testing.T) {
	order := constants.StudentRoleOrder

	if r := OrderRank(order, constants.RoleChairperson); r != 0 {
		t.Errorf("chairperson rank = %d, want 0", r)
	}
	if r := OrderRank(order, constants.RoleWebmaster); r != len(order)-1 {
		t.Errorf("webmaster rank = %d, want %d", r, len(order)-1)
	}
	if r := OrderRank(order, constants.RoleNone); r != len(order) {
		t.Errorf("unlisted category rank = %d, want %d", r, len(order))
	}
	if r := OrderRank(order, "mystery-role"); r != len(order) {
		t.Errorf("unknown category rank = %d, want %d", r, len(order))
	}
}
