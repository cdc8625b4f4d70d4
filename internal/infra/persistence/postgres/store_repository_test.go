package postgres

import (
	"context"
	"testing"

	"shopradar/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		DSN: "host=127.0.0.1 user=shopradar dbname=shopradar sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)

	return db
}

func TestStoreRepository_ActiveStores_OrderedByID(t *testing.T) {
	db := newDryRunDB(t)
	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var stores []*model.StoreModel

		return (&storeRepository{db: tx}).activeStores(context.Background()).Find(&stores)
	})

	assert.Contains(t, sql, "ORDER BY id ASC")
	assert.NotContains(t, sql, "ORDER BY store_name")
}
