package entities_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rickicode/mikrotik-billing/internal/entities"
)

func Test_CacheKey(t *testing.T) {
	testTable := []struct {
		name  string
		left  entities.Command
		right entities.Command
		equal bool
	}{
		{
			name:  "same params",
			left:  entities.NewCommand("/ip/hotspot/user/print", entities.NewParam("?name", "v1")),
			right: entities.NewCommand("/ip/hotspot/user/print", entities.NewParam("?name", "v1")),
			equal: true,
		},
		{
			name:  "separator inside a value",
			left:  entities.NewCommand("/ip/hotspot/user/print", entities.NewParam("?comment", "a|b=c")),
			right: entities.NewCommand("/ip/hotspot/user/print", entities.NewParam("?comment", "a"), entities.NewParam("b", "c")),
		},
		{
			name:  "voucher comment value",
			left:  entities.NewCommand("/ip/hotspot/user/print", entities.NewParam("?comment", "VOUCHER_SYSTEM|1000|0|0")),
			right: entities.NewCommand("/ip/hotspot/user/print", entities.NewParam("?comment", "VOUCHER_SYSTEM|1000|0"), entities.NewParam("0", "")),
		},
		{
			name:  "param order matters",
			left:  entities.NewCommand("/ppp/secret/print", entities.NewParam("?name", "p1"), entities.NewParam("?disabled", "no")),
			right: entities.NewCommand("/ppp/secret/print", entities.NewParam("?disabled", "no"), entities.NewParam("?name", "p1")),
		},
		{
			name:  "no params",
			left:  entities.NewCommand("/ppp/secret/print"),
			right: entities.NewCommand("/ppp/secret/print"),
			equal: true,
		},
	}

	for _, tt := range testTable {
		t.Run(tt.name, func(t *testing.T) {
			if tt.equal {
				require.Equal(t, tt.left.CacheKey(), tt.right.CacheKey())
				return
			}
			require.NotEqual(t, tt.left.CacheKey(), tt.right.CacheKey())
		})
	}
}

func Test_CacheKeyKeepsFamilyPrefix(t *testing.T) {
	cmd := entities.NewCommand("/ip/hotspot/user/print", entities.NewParam("?comment", "x|y"))
	require.Equal(t, "/ip/hotspot/user/print", cmd.CacheKey()[:len(cmd.Path)])
	require.Equal(t, "/ip/hotspot/user", cmd.Family())
}
