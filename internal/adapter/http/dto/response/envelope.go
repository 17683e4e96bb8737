package response

// Envelope is the uniform success wrapper the dashboard expects. Errors use
// pkg.HTTPError instead, which carries the same success/message shape.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func OK(data interface{}) Envelope {
	return Envelope{Success: true, Message: "ok", Data: data}
}

func OKMessage(message string, data interface{}) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}
