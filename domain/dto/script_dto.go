package dto

// ScriptResponse is the success body of the generate-script endpoint.
type ScriptResponse struct {
	Script string `json:"script"`
}
