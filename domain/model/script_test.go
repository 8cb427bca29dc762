package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeconds_Unmarshal(t *testing.T) {
	cases := map[string]Seconds{
		`60`:     60,
		`30.5`:   30.5,
		`"60"`:   60,
		`" 45 "`: 45,
		`"abc"`:  0,
		`null`:   0,
		`true`:   0,
		`0`:      0,
	}
	for in, want := range cases {
		var req ScriptRequest
		require.NoError(t, json.Unmarshal([]byte(`{"videoLength":`+in+`}`), &req), in)
		assert.Equal(t, want, req.VideoLength, in)
	}
}

func TestSeconds_String(t *testing.T) {
	assert.Equal(t, "60", Seconds(60).String())
	assert.Equal(t, "30.5", Seconds(30.5).String())
}

func TestScriptRequest_MissingFields(t *testing.T) {
	req := ScriptRequest{Topic: "t", Platform: "youtube", VideoLength: 30.5, Tone: "casual", ContentStyle: "educational"}
	assert.False(t, req.MissingFields())

	req.VideoLength = 0
	assert.True(t, req.MissingFields())
}
