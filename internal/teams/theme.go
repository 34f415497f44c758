package teams

// ChapterTheme carries the accent colors a frontend uses for a chapter block.
type ChapterTheme struct {
	Accent   string `json:"accent"`
	Gradient string `json:"gradient"`
}

var defaultTheme = ChapterTheme{Accent: "#00629b", Gradient: "from-sky-700 to-blue-900"}

// themes keys on the chapter slug. Single source of truth for chapter
// accenting; unlisted chapters get the branch default.
var themes = map[string]ChapterTheme{
	"ieee-computer-society":                {Accent: "#f2a900", Gradient: "from-amber-500 to-orange-700"},
	"ieee-robotics-and-automation-society": {Accent: "#8b1d41", Gradient: "from-rose-700 to-red-900"},
	"ieee-women-in-engineering":            {Accent: "#6d2077", Gradient: "from-purple-600 to-fuchsia-900"},
	"ieee-power-and-energy-society":        {Accent: "#00843d", Gradient: "from-green-600 to-emerald-900"},
}

// ThemeFor returns the theme for a chapter slug, falling back to the branch
// default.
func ThemeFor(slug string) ChapterTheme {
	if t, ok := themes[slug]; ok {
		return t
	}
	return defaultTheme
}
