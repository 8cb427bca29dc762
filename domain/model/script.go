package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Seconds is a video length. It decodes from a JSON number or a numeric
// string; any other value decodes as zero, which counts as missing.
type Seconds float64

func (s *Seconds) UnmarshalJSON(data []byte) error {
	*s = 0
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil {
			*s = Seconds(f)
		}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*s = Seconds(f)
	}
	return nil
}

func (s Seconds) String() string {
	return strconv.FormatFloat(float64(s), 'f', -1, 64)
}

// ScriptReference is a reference material attached to a script request.
type ScriptReference struct {
	Type  string `json:"type"`
	URL   string `json:"url"`
	Title string `json:"title"`
}

// ScriptRequest is the body of the generate-script endpoint.
type ScriptRequest struct {
	Topic        string            `json:"topic"`
	Platform     string            `json:"platform"`
	VideoLength  Seconds           `json:"videoLength"`
	Tone         string            `json:"tone"`
	ContentStyle string            `json:"contentStyle"`
	References   []ScriptReference `json:"references"`
}

// MissingFields reports whether any required field is absent or zero.
func (r ScriptRequest) MissingFields() bool {
	return r.Topic == "" || r.Platform == "" || r.VideoLength <= 0 || r.Tone == "" || r.ContentStyle == ""
}

// ScriptRequestedEvent is published for every accepted generate-script call.
type ScriptRequestedEvent struct {
	Topic          string  `json:"topic"`
	Platform       string  `json:"platform"`
	VideoLength    Seconds `json:"videoLength"`
	Tone           string  `json:"tone"`
	ContentStyle   string  `json:"contentStyle"`
	ReferenceCount int     `json:"referenceCount"`
	RequestedAt    string  `json:"requestedAt"`
}
