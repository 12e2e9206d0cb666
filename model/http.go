package model

type EvaluateRequestBody struct {
	Rule    string `json:"rule"`
	Subject []any  `json:"subject"`
	X       []any  `json:"x"`
	K       int    `json:"k"`
	Y       int    `json:"y"`
}

type EvaluateResponse struct {
	Rule   string `json:"rule"`
	Result bool   `json:"result"`
}

type RuleInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Params      []string `json:"params"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
