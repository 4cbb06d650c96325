package historyrepo_test

import (
	"context"
	"testing"
	"time"

	"salesflow/internal/adapters/out/postgres/historyrepo"
	"salesflow/internal/core/domain/model/health"
	"salesflow/internal/core/domain/model/history"
	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var testNow = time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC)

type StageHistoryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *historyrepo.GormStageHistoryRepository
}

func (suite *StageHistoryRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&historyrepo.StageEntryDTO{}))
}

func (suite *StageHistoryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE stage_history").Error)
	suite.repository = historyrepo.NewGormStageHistoryRepository(suite.db)
}

func (suite *StageHistoryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *StageHistoryRepositoryIntegrationTestSuite) newChild() *order.Order {
	master, err := order.NewMasterOrder(kernel.NewUUID(), "SO1001", kernel.NewUUID(), "", testNow)
	suite.Require().NoError(err)
	shipDate := testNow.Add(2 * 24 * time.Hour)
	child, err := order.NewChildOrder(kernel.NewUUID(), master, 1, &shipDate, "Plant-A", testNow)
	suite.Require().NoError(err)
	return child
}

func (suite *StageHistoryRepositoryIntegrationTestSuite) TestAppend_ThenListByOrder_OldestFirst() {
	ctx := context.Background()
	child := suite.newChild()

	snapshot, err := history.NewHealthSnapshot(kernel.NewUUID(), child, testNow.Add(time.Hour))
	suite.Require().NoError(err)
	_, _, err = child.Advance(testNow)
	suite.Require().NoError(err)
	transition, err := history.NewTransitionEntry(kernel.NewUUID(), child, history.Transition, testNow)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Append(ctx, snapshot, transition))

	entries, err := suite.repository.ListByOrder(ctx, child.ID())
	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal(history.Transition, entries[0].Kind())
	suite.Equal(order.Procurement, entries[0].Stage())
	suite.Equal(history.HealthSnapshot, entries[1].Kind())
	suite.Equal(health.Amber, entries[1].Color())
	suite.True(testNow.Add(time.Hour).Equal(entries[1].EnteredAt()))
}

func (suite *StageHistoryRepositoryIntegrationTestSuite) TestAppend_Nothing_IsNoop() {
	suite.Require().NoError(suite.repository.Append(context.Background()))
}

func (suite *StageHistoryRepositoryIntegrationTestSuite) TestPruneSnapshotsBefore_KeepsTransitions() {
	ctx := context.Background()
	child := suite.newChild()
	old := testNow.Add(-40 * 24 * time.Hour)

	oldSnapshot, err := history.NewHealthSnapshot(kernel.NewUUID(), child, old)
	suite.Require().NoError(err)
	freshSnapshot, err := history.NewHealthSnapshot(kernel.NewUUID(), child, testNow)
	suite.Require().NoError(err)
	oldMove, err := history.NewTransitionEntry(kernel.NewUUID(), child, history.DirectMove, old)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Append(ctx, oldSnapshot, freshSnapshot, oldMove))

	deleted, err := suite.repository.PruneSnapshotsBefore(ctx, testNow.Add(-30*24*time.Hour))

	suite.Require().NoError(err)
	suite.Equal(int64(1), deleted)
	entries, err := suite.repository.ListByOrder(ctx, child.ID())
	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal(history.DirectMove, entries[0].Kind())
	suite.Equal(history.HealthSnapshot, entries[1].Kind())
}

func TestStageHistoryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(StageHistoryRepositoryIntegrationTestSuite))
}
