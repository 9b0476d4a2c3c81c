package domain

// Profile holds the public fields of a GitHub user.
// Missing API fields are stored as their zero value.
type Profile struct {
	Login           string `json:"login"`
	Name            string `json:"name"`
	AvatarURL       string `json:"avatar_url"`
	Bio             string `json:"bio"`
	Location        string `json:"location"`
	Company         string `json:"company"`
	Blog            string `json:"blog"`
	Followers       int    `json:"followers"`
	Following       int    `json:"following"`
	PublicRepos     int    `json:"public_repos"`
	TwitterUsername string `json:"twitter_username"`
	Email           string `json:"email"`
}

// DisplayName returns the user's name, or the login when no name is set.
func (p *Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Login
}
