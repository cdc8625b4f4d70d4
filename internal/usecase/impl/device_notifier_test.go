package impl

import (
	"context"
	"testing"

	"shopradar/internal/domain/constants"
	"shopradar/internal/domain/service"
	"shopradar/internal/errors"
	mockSvc "shopradar/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeviceNotifier_Notify(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		sendErr   error
		wantSend  bool
		wantToken bool
	}{
		{name: "delivers to the registered token", token: `"token-1"`, wantSend: true, wantToken: true},
		{name: "no token registered", wantSend: false},
		{name: "send failure keeps the token", token: `"token-1"`, sendErr: errors.New("unavailable"), wantSend: true, wantToken: true},
		{name: "rejected token is discarded", token: `"token-1"`, sendErr: service.ErrInvalidPushToken, wantSend: true, wantToken: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			local := newMemoryLocalStore()
			if tt.token != "" {
				require.NoError(t, local.Set(ctx, constants.LocalKeyDevicePushToken, []byte(tt.token)))
			}
			push := mockSvc.NewMockNotificationService(t)
			if tt.wantSend {
				push.EXPECT().
					SendSingleNotification(mock.Anything, "token-1", "title", "body", map[string]string{"k": "v"}).
					Return(tt.sendErr).Once()
			}

			newDeviceNotifier(local, push, newDiscardLogger()).notify(ctx, "title", "body", map[string]string{"k": "v"})

			assert.Equal(t, tt.wantToken, local.has(constants.LocalKeyDevicePushToken))
		})
	}
}
