package github

// userResponse mirrors the fields we read from GET /users/{username}.
type userResponse struct {
	Login       string `json:"login"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
}

// repoResponse mirrors the fields we read from GET /users/{username}/repos.
type repoResponse struct {
	Name            string `json:"name"`
	HTMLURL         string `json:"html_url"`
	Language        string `json:"language"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
	Fork            bool   `json:"fork"`
}
