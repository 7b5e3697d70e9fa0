package settings

type themeOutput struct {
	Body themeResponse
}

type setThemeInput struct {
	Body themeRequest
}

type themeRequest struct {
	Theme string `json:"theme" enum:"dark,light" doc:"UI theme"`
}

type themeResponse struct {
	Theme string `json:"theme"`
}
