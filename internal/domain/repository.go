package domain

// Repository is a public repository owned by the user.
type Repository struct {
	Name        string `json:"name"`
	URL         string `json:"html_url"`
	Description string `json:"description"`
	Language    string `json:"language"` // empty when GitHub detected no primary language
	Stars       int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
	Fork        bool   `json:"fork"`
}
