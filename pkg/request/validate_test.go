package request

import (
	"testing"

	da "github.com/lintang-b-s/drivingroute/pkg/datastructure"
	"github.com/lintang-b-s/drivingroute/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		req     *Request
		wantErr string
	}{
		{name: "all in range", req: NewRequest(0, 2, WithAvoidNodes(1), WithAvoidSegments(da.NewSegment(0, 2)), WithIncludeNode(1))},
		{name: "source out of range", req: NewRequest(3, 2), wantErr: "Source"},
		{name: "destination out of range", req: NewRequest(0, 30), wantErr: "Destination"},
		{name: "avoid node out of range", req: NewRequest(0, 2, WithAvoidNodes(1, 4)), wantErr: "AvoidNodes[1]"},
		{name: "segment out of range", req: NewRequest(0, 2, WithAvoidSegments(da.NewSegment(5, 1))), wantErr: "AvoidSegments[0].From"},
		{name: "include node out of range", req: NewRequest(0, 2, WithIncludeNode(3)), wantErr: "IncludeNode"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req, 3)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, util.IsCode(err, util.ErrBadParamInput))
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, err.Error(), "below 3")
		})
	}
}

func TestValidateEmptyNetwork(t *testing.T) {
	err := Validate(NewRequest(0, 0), 0)
	assert.Error(t, err)
}
