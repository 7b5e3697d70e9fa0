package advisory

type insightOutput struct {
	Body bulletsResponse
}

type summaryOutput struct {
	Body bulletsResponse
}

type bulletsResponse struct {
	Text string `json:"text" doc:"Three advisory bullet lines separated by newlines"`
}
