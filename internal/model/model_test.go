package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{in: "student", want: RoleStudent},
		{in: " Faculty ", want: RoleFaculty},
		{in: "SECURITY", want: RoleSecurity},
		{in: "admin", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDecision(t *testing.T) {
	for _, ok := range []string{"Accepted", "Rejected"} {
		got, err := ParseDecision(ok)
		assert.NoError(t, err)
		assert.Equal(t, GatePassStatus(ok), got)
	}
	for _, bad := range []string{"Pending", "accepted", "Approved", ""} {
		_, err := ParseDecision(bad)
		assert.Error(t, err, bad)
	}
}

func TestGatePassStatus(t *testing.T) {
	assert.True(t, GatePassStatusPending.Valid())
	assert.False(t, GatePassStatusPending.Terminal())
	assert.True(t, GatePassStatusAccepted.Terminal())
	assert.True(t, GatePassStatusRejected.Terminal())
	assert.False(t, GatePassStatus("Cancelled").Valid())
}
