package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Errors  []string    `json:"errors,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func ErrorsToStrings(errors []error) []string {
	var out []string
	for _, err := range errors {
		out = append(out, err.Error())
	}
	return out
}
