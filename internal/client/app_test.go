package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-invoice/internal/adapter"
	"github.com/MKhiriev/go-invoice/internal/logger"
	"github.com/MKhiriev/go-invoice/internal/tui"
	"github.com/MKhiriev/go-invoice/models"
)

type loginStep struct {
	user models.User
	err  error
}

type loopStep struct {
	logout bool
	err    error
}

// scriptedUI replays login and main loop results in order.
type scriptedUI struct {
	logins []loginStep
	loops  []loopStep

	loginCalls int
	loopUsers  []models.User
}

func (u *scriptedUI) LoginFlow(context.Context) (models.User, error) {
	step := u.logins[u.loginCalls]
	u.loginCalls++
	return step.user, step.err
}

func (u *scriptedUI) MainLoop(_ context.Context, user models.User) (bool, error) {
	step := u.loops[len(u.loopUsers)]
	u.loopUsers = append(u.loopUsers, user)
	return step.logout, step.err
}

// tokenAdapter records SetToken calls; other methods are not used by App.
type tokenAdapter struct {
	adapter.ServerAdapter
	tokens []string
}

func (a *tokenAdapter) SetToken(token string) { a.tokens = append(a.tokens, token) }

func TestNewApp(t *testing.T) {
	_, err := NewApp(nil, &scriptedUI{}, logger.Nop())
	require.ErrorIs(t, err, errNoServerAdapter)

	_, err = NewApp(&tokenAdapter{}, nil, logger.Nop())
	require.ErrorIs(t, err, errNoUI)

	app, err := NewApp(&tokenAdapter{}, &scriptedUI{}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, app)
}

func TestApp_Run(t *testing.T) {
	ann := models.User{UserID: "u-ann"}
	bob := models.User{UserID: "u-bob"}
	boom := errors.New("boom")

	tests := []struct {
		name       string
		ui         *scriptedUI
		wantErr    error
		wantUsers  []models.User
		wantTokens []string
	}{
		{
			name: "quit on login",
			ui:   &scriptedUI{logins: []loginStep{{err: tui.ErrUserQuit}}},
		},
		{
			name:      "quit from main loop",
			ui:        &scriptedUI{logins: []loginStep{{user: ann}}, loops: []loopStep{{}}},
			wantUsers: []models.User{ann},
		},
		{
			name: "logout then login as another user",
			ui: &scriptedUI{
				logins: []loginStep{{user: ann}, {user: bob}},
				loops:  []loopStep{{logout: true}, {}},
			},
			wantUsers:  []models.User{ann, bob},
			wantTokens: []string{""},
		},
		{
			name: "logout then quit",
			ui: &scriptedUI{
				logins: []loginStep{{user: ann}, {err: tui.ErrUserQuit}},
				loops:  []loopStep{{logout: true}},
			},
			wantUsers:  []models.User{ann},
			wantTokens: []string{""},
		},
		{
			name:    "login flow error",
			ui:      &scriptedUI{logins: []loginStep{{err: boom}}},
			wantErr: boom,
		},
		{
			name:      "main loop error",
			ui:        &scriptedUI{logins: []loginStep{{user: ann}}, loops: []loopStep{{err: boom}}},
			wantErr:   boom,
			wantUsers: []models.User{ann},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := &tokenAdapter{}
			app, err := NewApp(server, tt.ui, logger.Nop())
			require.NoError(t, err)

			err = app.Run()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantUsers, tt.ui.loopUsers)
			assert.Equal(t, tt.wantTokens, server.tokens)
		})
	}
}
