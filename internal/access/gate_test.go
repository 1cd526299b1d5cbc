package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		required Role
		want     Decision
	}{
		{
			name:     "loading defers any decision",
			state:    State{Loading: true},
			required: RoleNone,
			want:     Wait,
		},
		{
			name:     "loading defers even for admin views",
			state:    State{Loading: true, Authenticated: true, Admin: true},
			required: RoleAdmin,
			want:     Wait,
		},
		{
			name:     "anonymous user lands on the login page",
			state:    State{},
			required: RoleNone,
			want:     RedirectLanding,
		},
		{
			name:     "anonymous user never reaches admin views",
			state:    State{},
			required: RoleAdmin,
			want:     RedirectLanding,
		},
		{
			name:     "authenticated user renders plain views",
			state:    State{Authenticated: true},
			required: RoleNone,
			want:     Render,
		},
		{
			name:     "non-admin is sent to the dashboard, not an error page",
			state:    State{Authenticated: true},
			required: RoleAdmin,
			want:     RedirectDashboard,
		},
		{
			name:     "admin renders admin views",
			state:    State{Authenticated: true, Admin: true},
			required: RoleAdmin,
			want:     Render,
		},
		{
			name:     "admin renders plain views too",
			state:    State{Authenticated: true, Admin: true},
			required: RoleNone,
			want:     Render,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.state, tt.required))
		})
	}
}
