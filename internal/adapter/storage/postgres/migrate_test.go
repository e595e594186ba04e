package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationNames_PairedAndOrdered(t *testing.T) {
	names, err := MigrationNames()
	require.NoError(t, err)
	require.NotEmpty(t, names)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, n := range names {
		switch {
		case strings.HasSuffix(n, ".up.sql"):
			ups[strings.TrimSuffix(n, ".up.sql")] = true
		case strings.HasSuffix(n, ".down.sql"):
			downs[strings.TrimSuffix(n, ".down.sql")] = true
		default:
			t.Fatalf("unexpected migration file %q", n)
		}
	}
	assert.Equal(t, ups, downs)
	assert.True(t, strings.HasPrefix(names[0], "000001_"))
}

func TestMigrations_LedgerIsAppendOnly(t *testing.T) {
	body, err := migrationFiles.ReadFile("migrations/000001_wallet_ledger.up.sql")
	require.NoError(t, err)
	sql := strings.ToUpper(string(body))
	assert.Contains(t, sql, "ON UPDATE TO LEDGER_ENTRIES DO INSTEAD NOTHING")
	assert.Contains(t, sql, "ON DELETE TO LEDGER_ENTRIES DO INSTEAD NOTHING")
}
