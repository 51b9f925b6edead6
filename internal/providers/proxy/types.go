package proxy

// Wire shapes returned by the sports-data proxy.

type gamesResponse struct {
	Games []gameResponse `json:"games"`
}

type gameResponse struct {
	League    string         `json:"league"`
	Home      sideResponse   `json:"home"`
	Away      sideResponse   `json:"away"`
	Status    statusResponse `json:"status"`
	StartTime int64          `json:"startTime"`
}

type sideResponse struct {
	TeamID string `json:"teamId"`
	Name   string `json:"name"`
	Logo   string `json:"logo"`
	Score  int    `json:"score"`
}

type statusResponse struct {
	Phase      string `json:"phase"`
	Clock      string `json:"clock"`
	Possession string `json:"possession"`
	Down       int    `json:"down"`
	Distance   int    `json:"distance"`
	YardLine   string `json:"yardLine"`
	Outs       int    `json:"outs"`
	OnFirst    bool   `json:"onFirst"`
	OnSecond   bool   `json:"onSecond"`
	OnThird    bool   `json:"onThird"`
}
