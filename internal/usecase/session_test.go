package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-talent-session/internal/bus"
	"go-talent-session/internal/domain"
	"go-talent-session/internal/usecase"
	"go-talent-session/pkg/apperror"
	"go-talent-session/pkg/logger"
	"go-talent-session/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T, factory usecase.GatewayFactory) *usecase.SessionRegistry {
	t.Helper()
	return usecase.NewSessionRegistry(factory, validation.New(), bus.New(), logger.NewTest(t))
}

func TestSessionRegistry(t *testing.T) {
	built := 0
	reg := newRegistry(t, func(s domain.Session) usecase.Gateways {
		built++
		return usecase.Gateways{
			Connections:   new(MockConnectionGateway),
			Jobs:          new(MockJobGateway),
			Notifications: new(MockNotificationGateway),
		}
	})

	laptop := domain.Session{UserID: "a", Token: "t1"}
	a := reg.Get(laptop)
	assert.Same(t, a, reg.Get(laptop))
	assert.NotSame(t, a.Relationships, reg.Get(domain.Session{UserID: "b", Token: "t2"}).Relationships)
	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, 2, built)

	phone := domain.Session{UserID: "a", Token: "t3"}
	assert.NotSame(t, a, reg.Get(phone))
	assert.Same(t, a, reg.Get(laptop))
	assert.Equal(t, 3, built)
	assert.Equal(t, 3, reg.Len())

	assert.True(t, reg.End(laptop))
	assert.False(t, reg.End(laptop))
	assert.Equal(t, 2, reg.Len())
	assert.NotSame(t, a, reg.Get(laptop))
}

func TestSessionsOfOneUserKeepSeparateCaches(t *testing.T) {
	ctx := context.Background()
	gateways := map[string]*MockNotificationGateway{}
	reg := newRegistry(t, func(s domain.Session) usecase.Gateways {
		gw := new(MockNotificationGateway)
		gateways[s.Token] = gw
		return usecase.Gateways{
			Connections:   new(MockConnectionGateway),
			Jobs:          new(MockJobGateway),
			Notifications: gw,
		}
	})

	laptop := reg.Get(domain.Session{UserID: "a", Token: "laptop"})
	gateways["laptop"].On("List", mock.Anything).Return(sampleFeed(), nil).Once()
	require.NoError(t, laptop.Notifications.Load(ctx))

	phone := reg.Get(domain.Session{UserID: "a", Token: "phone"})
	assert.Empty(t, phone.Notifications.Notifications())

	gateways["laptop"].On("MarkRead", mock.Anything, "n1").Return(nil).Once()
	require.NoError(t, reg.Get(domain.Session{UserID: "a", Token: "laptop"}).Notifications.MarkRead(ctx, "n1"))
	assert.True(t, apperror.IsKind(phone.Notifications.MarkRead(ctx, "n1"), apperror.KindNotFound))
}

func TestSessionRegistrySweep(t *testing.T) {
	reg := newRegistry(t, func(domain.Session) usecase.Gateways {
		return usecase.Gateways{
			Connections:   new(MockConnectionGateway),
			Jobs:          new(MockJobGateway),
			Notifications: new(MockNotificationGateway),
		}
	})
	reg.Get(domain.Session{UserID: "a", Token: "t1"})
	reg.Get(domain.Session{UserID: "a", Token: "t2"})

	assert.Equal(t, 0, reg.Sweep(time.Hour))
	assert.Equal(t, 2, reg.Sweep(0))
	assert.Equal(t, 0, reg.Len())
}
