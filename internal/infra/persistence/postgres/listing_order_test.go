package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// sqlCapture records the statements gorm builds so tests can assert on
// the generated SQL without a live database.
type sqlCapture struct {
	statements []string
}

func (c *sqlCapture) LogMode(gormlogger.LogLevel) gormlogger.Interface { return c }

func (c *sqlCapture) Info(context.Context, string, ...interface{}) {}

func (c *sqlCapture) Warn(context.Context, string, ...interface{}) {}

func (c *sqlCapture) Error(context.Context, string, ...interface{}) {}

func (c *sqlCapture) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	c.statements = append(c.statements, sql)
}

func (c *sqlCapture) last(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, c.statements)

	return c.statements[len(c.statements)-1]
}

// newDryRunDB opens a gorm session that builds SQL without executing it.
func newDryRunDB(t *testing.T) (*gorm.DB, *sqlCapture) {
	t.Helper()

	capture := &sqlCapture{}
	db, err := gorm.Open(pgdriver.New(pgdriver.Config{DSN: "host=localhost user=privy dbname=privy"}), &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 capture,
	})
	require.NoError(t, err)

	return db, capture
}

// Every multi-row listing must carry the full deterministic order:
// created_at DESC with id DESC breaking ties, so rows created in the
// same instant still list in one stable total order.
const wantListingOrder = "ORDER BY created_at DESC, id DESC"

func TestRestroomRepository_ListingOrder(t *testing.T) {
	db, capture := newDryRunDB(t)
	repo := NewRestroomRepository(db)
	ctx := context.Background()

	_, err := repo.FindAllRestrooms(ctx)
	require.NoError(t, err)
	assert.Contains(t, capture.last(t), wantListingOrder)

	_, err = repo.FindRestroomsByCreator(ctx, "device_1756425600000_k3j9x2mwq81fz")
	require.NoError(t, err)
	assert.Contains(t, capture.last(t), wantListingOrder)

	_, err = repo.FindRestroomsByIDs(ctx, []uuid.UUID{uuid.New(), uuid.New()})
	require.NoError(t, err)
	assert.Contains(t, capture.last(t), wantListingOrder)

	_, err = repo.FindRestroomsWithinBound(ctx, orb.Bound{
		Min: orb.Point{-122.2, 37.4},
		Max: orb.Point{-122.1, 37.5},
	})
	require.NoError(t, err)
	assert.Contains(t, capture.last(t), wantListingOrder)
}

func TestReviewRepository_ListingOrder(t *testing.T) {
	db, capture := newDryRunDB(t)
	repo := NewReviewRepository(db)

	_, err := repo.FindReviewsByRestroom(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Contains(t, capture.last(t), wantListingOrder)
}

func TestSavedRestroomRepository_ListingOrder(t *testing.T) {
	db, capture := newDryRunDB(t)
	repo := NewSavedRestroomRepository(db)

	_, err := repo.FindSavedRestroomsByDevice(context.Background(), "device_1756425600000_k3j9x2mwq81fz")
	require.NoError(t, err)
	assert.Contains(t, capture.last(t), wantListingOrder)
}
