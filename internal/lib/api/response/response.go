package response

// Response is the body of every failed API call.
type Response struct {
	Error string `json:"error"`
}

func Error(msg string) Response {
	return Response{
		Error: msg,
	}
}
