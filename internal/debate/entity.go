package debate

type Request struct {
	Action   Action `json:"action"`
	Topic    string `json:"topic,omitempty"`
	Argument string `json:"argument,omitempty"`
	Category string `json:"category,omitempty"`
}

type Response struct {
	Result string `json:"result"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
