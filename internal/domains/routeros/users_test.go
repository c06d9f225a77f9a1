package routeros_test

import (
	"context"
	"fmt"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/rickicode/mikrotik-billing/internal/domains/comment"
	"github.com/rickicode/mikrotik-billing/internal/entities"
	"github.com/rickicode/mikrotik-billing/internal/errs"
)

func Test_CreateVoucherUser(t *testing.T) {
	client, f := startClient(t, nil)
	ctx := context.Background()

	id, err := client.CreateVoucherUser(ctx, entities.NewVoucherUser{
		Code:        "ABC123",
		Password:    "ABC123",
		Profile:     "1hour",
		PriceSell:   5000,
		LimitUptime: "1h",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	row, ok := f.transport.Row("/ip/hotspot/user", "ABC123")
	require.True(t, ok)
	require.Equal(t, id, row[".id"])
	require.Equal(t, "1hour", row["profile"])
	require.Equal(t, "1h", row["limit-uptime"])
	require.Equal(t, "VOUCHER_SYSTEM|5000|0|0", row["comment"])

	// duplicate name is rejected by the device
	_, err = client.CreateVoucherUser(ctx, entities.NewVoucherUser{Code: "ABC123", Profile: "1hour"})
	require.ErrorIs(t, err, errs.ErrCommand)

	_, err = client.CreateVoucherUser(ctx, entities.NewVoucherUser{Code: "X"})
	require.ErrorIs(t, err, errs.ErrValidation)
}

func Test_CreateVoucherUserOffline(t *testing.T) {
	client, f := startClient(t, nil)

	f.transport.SetConnectError(fmt.Errorf("dial: %w", syscall.ETIMEDOUT))

	id, err := client.CreateVoucherUser(context.Background(), entities.NewVoucherUser{Code: "V1", Profile: "1hour"})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(id, "offline-"))
	require.Zero(t, f.transport.Writes())
}

func Test_UpdateHotspotUser(t *testing.T) {
	client, f := startClient(t, nil)
	ctx := context.Background()

	f.transport.Seed("/ip/hotspot/user", entities.Row{
		"name":    "V1",
		"profile": "1hour",
		"comment": "VOUCHER_SYSTEM|5000|0|0",
	})

	user, err := client.FindHotspotUser(ctx, "V1")
	require.NoError(t, err)

	now := time.Unix(1_700_000_000, 0)
	voucher, ok := comment.ParseVoucherComment(user.Comment, now)
	require.True(t, ok)

	voucher.FirstLogin = lo.ToPtr(now.Unix())
	voucher.ValidUntil = lo.ToPtr(now.Unix() + 3600)
	require.NoError(t, client.UpdateHotspotUser(ctx, user.ID, entities.HotspotUserUpdate{
		Profile: lo.ToPtr("2hour"),
		Comment: &voucher,
	}))

	row, _ := f.transport.Row("/ip/hotspot/user", "V1")
	require.Equal(t, "2hour", row["profile"])
	require.Equal(t, "VOUCHER_SYSTEM|5000|1700000000|1700003600", row["comment"])

	require.NoError(t, client.SetHotspotUserDisabled(ctx, user.ID, true))
	users, err := client.GetHotspotUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.True(t, users[0].Disabled)

	err = client.UpdateHotspotUser(ctx, "*FF", entities.HotspotUserUpdate{Profile: lo.ToPtr("x")})
	require.ErrorIs(t, err, errs.ErrCommand)

	_, err = client.FindHotspotUser(ctx, "missing")
	require.ErrorIs(t, err, errs.ErrUserNotFound)

	require.NoError(t, client.DeleteHotspotUser(ctx, user.ID))
	_, ok = f.transport.Row("/ip/hotspot/user", "V1")
	require.False(t, ok)
}

func Test_PPPoESecrets(t *testing.T) {
	client, f := startClient(t, nil)
	ctx := context.Background()

	id, err := client.CreatePPPoESecret(ctx, entities.NewPPPoESecret{
		Username:       "cust-1",
		Password:       "pw",
		Profile:        "10mbps",
		CustomerID:     "c-1",
		SubscriptionID: "s-1",
		CreatedAt:      1_700_000_000,
	})
	require.NoError(t, err)

	row, ok := f.transport.Row("/ppp/secret", "cust-1")
	require.True(t, ok)
	require.Equal(t, "pppoe", row["service"])
	require.Equal(t, entities.PPPoEComment{
		CustomerID:     "c-1",
		SubscriptionID: "s-1",
		CreatedAt:      1_700_000_000,
	}, comment.ParseComment(row["comment"], time.Now()))

	secret, err := client.FindPPPoESecret(ctx, "cust-1")
	require.NoError(t, err)
	require.Equal(t, id, secret.ID)

	require.NoError(t, client.SetPPPoESecretDisabled(ctx, id, true))
	secrets, err := client.GetPPPoESecrets(ctx)
	require.NoError(t, err)
	require.True(t, secrets.ByName()["cust-1"].Disabled)

	f.transport.Seed("/ppp/active", entities.Row{"name": "cust-1", "caller-id": "AA:BB"})
	sessions, err := client.GetPPPoEActive(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	require.Equal(t, "AA:BB", sessions[0].CallerID)

	require.NoError(t, client.DeletePPPoESecret(ctx, id))
	require.Empty(t, f.transport.Rows("/ppp/secret"))

	require.ErrorIs(t, client.DeletePPPoESecret(ctx, ""), errs.ErrValidation)
}
