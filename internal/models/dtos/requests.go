package dtos

// LoginRequest carries the admin credential pair.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TeamMemberRequest struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	RoleKey     string `json:"roleKey"`
	Bio         string `json:"bio"`
	PhotoURL    string `json:"photoUrl"`
	Priority    int    `json:"priority"`
	Affiliation string `json:"affiliation"`
	Chapter     string `json:"chapter"`
	Email       string `json:"email"`
	LinkedinURL string `json:"linkedinUrl"`
	FacebookURL string `json:"facebookUrl"`
	GithubURL   string `json:"githubUrl"`
}

type EventRequest struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Venue       string `json:"venue"`
	CoverURL    string `json:"coverUrl"`
	StartsAt    string `json:"startsAt"`
	EndsAt      string `json:"endsAt"`
	RegisterURL string `json:"registerUrl"`
}

type NewsPostRequest struct {
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Body      string `json:"body"`
	CoverURL  string `json:"coverUrl"`
	Published bool   `json:"published"`
}

type ApplicationRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	StudentID  string `json:"studentId"`
	Department string `json:"department"`
	Motivation string `json:"motivation"`
}

type ApplicationReviewRequest struct {
	Status string `json:"status"`
}

type SubscribeRequest struct {
	Email string `json:"email"`
}
