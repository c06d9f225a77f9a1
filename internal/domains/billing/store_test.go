package billing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rickicode/mikrotik-billing/internal/domains/billing"
	"github.com/rickicode/mikrotik-billing/internal/errs"
)

func Test_OpenUnsupportedDriver(t *testing.T) {
	for _, driver := range []string{"", "sqlite", "oracle"} {
		db, err := billing.Open(driver, "file::memory:")
		require.ErrorIs(t, err, errs.ErrConfiguration, driver)
		require.Nil(t, db)
	}
}
