package routeros_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rickicode/mikrotik-billing/internal/domains/routeros"
	"github.com/rickicode/mikrotik-billing/internal/domains/routeros/rostest"
	"github.com/rickicode/mikrotik-billing/internal/domains/routeros/routeros_mocks"
	"github.com/rickicode/mikrotik-billing/internal/entities"
	"github.com/rickicode/mikrotik-billing/internal/errs"
)

func Test_ExecuteValidation(t *testing.T) {
	client, f := startClient(t, nil)
	ctx := context.Background()

	testTable := []struct {
		name string
		cmd  entities.Command
	}{
		{name: "reboot", cmd: entities.NewCommand("/system/reboot")},
		{name: "shutdown in other case", cmd: entities.NewCommand("/System/Shutdown")},
		{name: "reset configuration", cmd: entities.NewCommand("/system/reset-configuration")},
		{name: "relative path", cmd: entities.NewCommand("ip/hotspot/user/print")},
		{name: "empty path", cmd: entities.NewCommand("")},
		{name: "whitespace in path", cmd: entities.NewCommand("/ip/hotspot user/print")},
		{name: "single segment", cmd: entities.NewCommand("/print")},
		{name: "empty segment", cmd: entities.NewCommand("/ip//user/print")},
		{name: "empty param key", cmd: entities.NewCommand("/ip/hotspot/user/add", entities.NewParam("", "x"))},
		{name: "param key with space", cmd: entities.NewCommand("/ip/hotspot/user/add", entities.NewParam("bad key", "x"))},
	}

	for _, tt := range testTable {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Execute(ctx, tt.cmd)
			require.ErrorIs(t, err, errs.ErrValidation)
		})
	}

	require.Zero(t, f.transport.Connects())
	require.Empty(t, f.transport.Calls())
}

func Test_ExecuteOfflineDefaults(t *testing.T) {
	client, f := startClient(t, nil)
	ctx := context.Background()

	f.transport.SetConnectError(fmt.Errorf("dial tcp 10.0.0.1:8728: %w", syscall.ECONNREFUSED))

	reply, err := client.Execute(ctx, entities.NewCommand("/ip/hotspot/user/print"))
	require.NoError(t, err)
	require.NotNil(t, reply.Rows)
	require.Empty(t, reply.Rows)
	require.True(t, reply.Offline)
	require.True(t, reply.Degraded)
	require.ErrorIs(t, reply.Cause, errs.ErrConnection)

	info := client.ConnectionInfo()
	require.True(t, info.IsOffline)
	require.False(t, info.Connected)
	require.Equal(t, entities.ConnectionStateDisconnected, info.State)
	require.NotEmpty(t, info.LastError)

	// no further I/O while offline
	reply, err = client.Execute(ctx, entities.NewCommand("/ip/hotspot/user/print"))
	require.NoError(t, err)
	require.Empty(t, reply.Rows)
	require.True(t, reply.Offline)

	reply, err = client.Execute(ctx, entities.NewCommand("/ip/hotspot/user/add", entities.NewParam("name", "v1")))
	require.NoError(t, err)
	require.Equal(t, "offline-id-1", reply.Ret)
	require.True(t, reply.Offline)

	reply, err = client.Execute(ctx, entities.NewCommand("/ip/hotspot/user/set", entities.NewParam(".id", "*1")))
	require.NoError(t, err)
	require.True(t, reply.Offline)
	require.True(t, reply.Degraded)

	require.Equal(t, 1, f.transport.Connects())
	require.Empty(t, f.transport.Calls())
	require.Empty(t, f.scheduler.Delays())
}

func Test_HealthCheckRecoversOffline(t *testing.T) {
	client, f := startClient(t, nil)
	ctx := context.Background()

	f.transport.SetConnectError(fmt.Errorf("dial tcp: %w", syscall.EHOSTUNREACH))
	_, err := client.Execute(ctx, entities.NewCommand("/ppp/secret/print"))
	require.NoError(t, err)
	require.True(t, client.ConnectionInfo().IsOffline)

	status, err := client.HealthCheck(ctx)
	require.NoError(t, err)
	require.False(t, status.Healthy)

	f.transport.SetConnectError(nil)
	status, err = client.HealthCheck(ctx)
	require.NoError(t, err)
	require.True(t, status.Healthy)

	info := client.ConnectionInfo()
	require.False(t, info.IsOffline)
	require.True(t, info.Connected)
	require.NotNil(t, info.LastConnectedAt)
	require.Empty(t, info.LastError)

	status, err = client.HealthCheck(ctx)
	require.NoError(t, err)
	require.Equal(t, entities.HealthStatus{Healthy: true, Message: "ok"}, status)
}

func Test_ConnectBackoff(t *testing.T) {
	client, f := startClient(t, nil)
	ctx := context.Background()

	f.transport.SetLoginError(errors.New("unexpected greeting from device"))

	err := client.Connect(ctx)
	require.Error(t, err)
	require.NotErrorIs(t, err, errs.ErrReconnectExhausted)
	require.False(t, client.ConnectionInfo().IsOffline)

	// commands do not dial while a retry is pending
	reply, err := client.Execute(ctx, entities.NewCommand("/ip/hotspot/user/print"))
	require.NoError(t, err)
	require.True(t, reply.Degraded)
	require.False(t, reply.Offline)
	require.Equal(t, 1, f.transport.Connects())

	for i := 1; i < 5; i++ {
		f.scheduler.Fire(i - 1)
		require.Eventually(t, func() bool {
			return len(f.scheduler.Delays()) == i+1
		}, time.Second, time.Millisecond)
	}

	f.scheduler.Fire(4)
	require.Eventually(t, func() bool {
		return f.transport.Connects() == 6
	}, time.Second, time.Millisecond)

	_, err = client.Execute(ctx, entities.NewCommand("/ip/hotspot/user/print"))
	require.ErrorIs(t, err, errs.ErrReconnectExhausted)

	require.Equal(t, []time.Duration{
		5 * time.Second,
		10 * time.Second,
		20 * time.Second,
		40 * time.Second,
		80 * time.Second,
	}, f.scheduler.Delays())

	// explicit connect starts over
	f.transport.SetLoginError(nil)
	require.NoError(t, client.Connect(ctx))

	info := client.ConnectionInfo()
	require.True(t, info.Connected)
	require.Zero(t, info.ReconnectAttempts)
}

func Test_ConnectAuthFailure(t *testing.T) {
	client, f := startClient(t, nil)
	ctx := context.Background()

	f.transport.SetLoginError(rostest.DeviceError("invalid user name or password (6)"))

	err := client.Connect(ctx)
	require.ErrorIs(t, err, errs.ErrAuthentication)
	require.Empty(t, f.scheduler.Delays())
	require.True(t, client.ConnectionInfo().IsOffline)

	reply, err := client.Execute(ctx, entities.NewCommand("/ppp/secret/print"))
	require.NoError(t, err)
	require.True(t, reply.Offline)
	require.Equal(t, 1, f.transport.Logins())
}

func Test_ConnectConfigurationError(t *testing.T) {
	client, _ := startClient(t, func(f *clientFields) {
		f.config.EXPECT().Load().Return(entities.RouterConfig{Port: 8728}, nil).Once()
	})

	err := client.Connect(context.Background())
	require.ErrorIs(t, err, errs.ErrConfiguration)
	require.False(t, client.ConnectionInfo().IsOffline)
}

func Test_ExecuteCache(t *testing.T) {
	client, f := startClient(t, nil)
	ctx := context.Background()

	f.transport.Seed("/ip/hotspot/user", entities.Row{"name": "v1"})
	cmd := entities.NewCommand("/ip/hotspot/user/print")

	reply, err := client.Execute(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, reply.Rows, 1)
	require.False(t, reply.Cached)

	reply, err = client.Execute(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, reply.Rows, 1)
	require.True(t, reply.Cached)
	require.Equal(t, 1, f.transport.CallCount(cmd.Path))

	f.clock.Advance(31 * time.Second)
	reply, err = client.Execute(ctx, cmd)
	require.NoError(t, err)
	require.False(t, reply.Cached)
	require.Equal(t, 2, f.transport.CallCount(cmd.Path))

	_, err = client.Execute(ctx, cmd, routeros.WithoutCache())
	require.NoError(t, err)
	require.Equal(t, 3, f.transport.CallCount(cmd.Path))

	// writes invalidate the family
	_, err = client.Execute(ctx, entities.NewCommand("/ip/hotspot/user/add", entities.NewParam("name", "v2")))
	require.NoError(t, err)

	reply, err = client.Execute(ctx, cmd)
	require.NoError(t, err)
	require.False(t, reply.Cached)
	require.Len(t, reply.Rows, 2)
	require.Equal(t, 4, f.transport.CallCount(cmd.Path))
}

func Test_ExecuteSerialized(t *testing.T) {
	client, f := startClient(t, nil)
	ctx := context.Background()

	require.NoError(t, client.Connect(ctx))
	f.transport.ResetCounters()
	f.transport.SetDelay(50 * time.Millisecond)

	paths := []string{
		"/ip/hotspot/user/print",
		"/ppp/secret/print",
		"/ip/hotspot/active/print",
	}

	var wg sync.WaitGroup
	started := time.Now()
	for _, path := range paths {
		wg.Add(1)
		go func() {
			defer wg.Done()

			reply, err := client.Execute(ctx, entities.NewCommand(path), routeros.WithoutCache())
			assert.NoError(t, err)
			assert.False(t, reply.Degraded)
		}()

		time.Sleep(10 * time.Millisecond)
	}
	wg.Wait()

	require.GreaterOrEqual(t, time.Since(started), 150*time.Millisecond)
	require.Equal(t, paths, f.transport.Calls())
}

func Test_ExecuteTimeout(t *testing.T) {
	client, f := startClient(t, nil)
	ctx := context.Background()

	require.NoError(t, client.Connect(ctx))
	f.transport.SetDelay(300 * time.Millisecond)

	started := time.Now()
	reply, err := client.Execute(ctx, entities.NewCommand("/ppp/active/print"), routeros.WithTimeout(20*time.Millisecond))
	require.NoError(t, err)
	require.Less(t, time.Since(started), 300*time.Millisecond)
	require.True(t, reply.Offline)
	require.True(t, reply.Degraded)
	require.ErrorIs(t, reply.Cause, errs.ErrCommandTimeout)
	require.ErrorIs(t, reply.Cause, errs.ErrConnection)
	require.True(t, client.ConnectionInfo().IsOffline)
}

func Test_ExecuteCommandRejected(t *testing.T) {
	client, f := startClient(t, nil)
	ctx := context.Background()

	f.transport.SetQueryError(func(path string) error {
		if path == "/ip/hotspot/user/print" {
			return rostest.DeviceError("no such command")
		}
		return nil
	})

	reply, err := client.Execute(ctx, entities.NewCommand("/ip/hotspot/user/print"))
	require.NoError(t, err)
	require.True(t, reply.Degraded)
	require.False(t, reply.Offline)
	require.ErrorIs(t, reply.Cause, errs.ErrCommand)

	info := client.ConnectionInfo()
	require.True(t, info.Connected)
	require.Equal(t, 1, f.transport.Connects())
}

func Test_ExecuteTransientRetry(t *testing.T) {
	client, f := startClient(t, nil)
	ctx := context.Background()

	f.transport.Seed("/ppp/secret", entities.Row{"name": "pppoe-1"})

	var failed atomic.Bool
	f.transport.SetQueryError(func(path string) error {
		if path == "/ppp/secret/print" && failed.CompareAndSwap(false, true) {
			return errors.New("unexpected reply word")
		}
		return nil
	})

	reply, err := client.Execute(ctx, entities.NewCommand("/ppp/secret/print"))
	require.NoError(t, err)
	require.False(t, reply.Degraded)
	require.Len(t, reply.Rows, 1)
	require.Equal(t, 2, f.transport.Connects())

	// a second failure gives the default reply
	f.transport.SetQueryError(func(path string) error {
		if path == "/ppp/active/print" {
			return errors.New("unexpected reply word")
		}
		return nil
	})

	reply, err = client.Execute(ctx, entities.NewCommand("/ppp/active/print"))
	require.NoError(t, err)
	require.True(t, reply.Degraded)
	require.False(t, reply.Offline)
	require.Error(t, reply.Cause)
	require.Equal(t, 3, f.transport.Connects())
}

func Test_ExecuteBatch(t *testing.T) {
	client, f := startClient(t, nil)
	ctx := context.Background()

	results, err := client.ExecuteBatch(ctx, []entities.Command{
		entities.NewCommand("/ip/hotspot/user/add", entities.NewParam("name", "v1")),
		entities.NewCommand("/system/reboot"),
		entities.NewCommand("/ip/hotspot/user/print"),
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	require.True(t, results[0].OK())
	require.NotEmpty(t, results[0].Reply.Ret)

	require.ErrorIs(t, results[1].Err, errs.ErrValidation)
	require.False(t, results[1].OK())

	require.True(t, results[2].OK())
	require.Len(t, results[2].Reply.Rows, 1)
	require.Equal(t, 1, f.transport.Writes())
}

func Test_ReloadConfig(t *testing.T) {
	moved := testConfig
	moved.Host = "10.0.0.2"

	client, f := startClient(t, func(f *clientFields) {
		f.config.EXPECT().Load().Return(testConfig, nil).Times(2)
		f.config.EXPECT().Load().Return(moved, nil).Once()
	})
	ctx := context.Background()

	require.NoError(t, client.Connect(ctx))

	info, err := client.ReloadConfig(ctx)
	require.NoError(t, err)
	require.Equal(t, testConfig.Host, info.Host)
	require.Equal(t, 1, f.transport.Connects())

	info, err = client.ReloadConfig(ctx)
	require.NoError(t, err)
	require.Equal(t, moved.Host, info.Host)
	require.True(t, info.Connected)
	require.Equal(t, 2, f.transport.Connects())
}

func Test_Disconnect(t *testing.T) {
	client, _ := startClient(t, nil)
	ctx := context.Background()

	require.NoError(t, client.Connect(ctx))
	require.NoError(t, client.Disconnect(ctx))
	require.NoError(t, client.Disconnect(ctx))

	info := client.ConnectionInfo()
	require.False(t, info.Connected)
	require.Equal(t, entities.ConnectionStateDisconnected, info.State)
}

func Test_Observer(t *testing.T) {
	observer := routeros_mocks.NewMockIObserver(t)

	var (
		mu       sync.Mutex
		outcomes []entities.CommandOutcome
		states   []entities.ConnectionState
	)
	observer.EXPECT().OnCommand(mock.Anything).Run(func(event entities.CommandEvent) {
		mu.Lock()
		defer mu.Unlock()
		outcomes = append(outcomes, event.Outcome)
	}).Return()
	observer.EXPECT().OnStateChanged(mock.Anything).Run(func(info entities.ConnectionInfo) {
		mu.Lock()
		defer mu.Unlock()
		states = append(states, info.State)
	}).Return()

	client, _ := startClient(t, nil, routeros.WithObserver(observer))
	ctx := context.Background()

	cmd := entities.NewCommand("/ip/hotspot/user/print")
	_, err := client.Execute(ctx, cmd)
	require.NoError(t, err)
	_, err = client.Execute(ctx, cmd)
	require.NoError(t, err)
	_, err = client.Execute(ctx, entities.NewCommand("/system/reboot"))
	require.Error(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []entities.CommandOutcome{
		entities.CommandOutcomeOK,
		entities.CommandOutcomeCached,
		entities.CommandOutcomeRejected,
	}, outcomes)
	require.Equal(t, []entities.ConnectionState{
		entities.ConnectionStateConnecting,
		entities.ConnectionStateAuthenticating,
		entities.ConnectionStateConnected,
	}, states)
}

func Test_ClientStopped(t *testing.T) {
	f := newClientFields(t)
	client := routeros.NewService(f.transport, f.config, nil, validator.New())

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		client.Run(ctx)
	}()

	cancel()
	<-stopped

	_, err := client.Execute(context.Background(), entities.NewCommand("/ip/hotspot/user/print"))
	require.ErrorIs(t, err, errs.ErrClientStopped)
	require.NoError(t, client.Disconnect(context.Background()))
}
