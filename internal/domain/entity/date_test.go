package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_MarshalJSON(t *testing.T) {
	d := NewDate(time.Date(2018, time.January, 2, 15, 4, 5, 0, time.Local))

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2018-01-02"`, string(data))
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "date only", input: `"2018-01-02"`, want: "2018-01-02"},
		{name: "rfc3339", input: `"2018-01-02T10:00:00Z"`, want: "2018-01-02"},
		{name: "not a string", input: `20180102`, wantErr: true},
		{name: "garbage", input: `"yesterday"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Format(DateLayout))
		})
	}
}

func TestDate_NullLeavesPointerNil(t *testing.T) {
	var c Customer
	require.NoError(t, json.Unmarshal([]byte(`{"nombre":"Ana","createAt":null}`), &c))

	assert.Equal(t, "Ana", c.FirstName)
	assert.Nil(t, c.CreateAt)
}
