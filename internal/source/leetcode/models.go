package leetcode

type graphqlRequest struct {
	Query     string            `json:"query"`
	Variables map[string]string `json:"variables"`
}

type statsResponse struct {
	Data struct {
		MatchedUser *matchedUser `json:"matchedUser"`
	} `json:"data"`
}

type matchedUser struct {
	Username string `json:"username"`
	Profile  struct {
		Ranking int `json:"ranking"`
	} `json:"profile"`
	SubmitStatsGlobal struct {
		ACSubmissionNum []submissionCount `json:"acSubmissionNum"`
	} `json:"submitStatsGlobal"`
}

type submissionCount struct {
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}
