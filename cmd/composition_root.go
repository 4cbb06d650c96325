package cmd

import (
	"log/slog"

	httpin "salesflow/internal/adapters/in/http"
	"salesflow/internal/adapters/out/postgres"
	"salesflow/internal/core/application/usecases/commands"
	"salesflow/internal/core/application/usecases/queries"
	"salesflow/internal/core/domain/model/kernel"
	"salesflow/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      kernel.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      kernel.NewSystemClock(),
		logger:     logger,
	}
}

func (c *CompositionRoot) workflowUoWFactory() commands.WorkflowUoWFactory {
	return FuncWorkflowUoWFactory(func() commands.WorkflowUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) importUoWFactory() commands.ImportUoWFactory {
	return FuncImportUoWFactory(func() commands.ImportUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) historyUoWFactory() commands.HistoryUoWFactory {
	return FuncHistoryUoWFactory(func() commands.HistoryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateMasterOrderCommandHandler() commands.CreateMasterOrderCommandHandler {
	return commands.NewCreateMasterOrderCommandHandler(c.importUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateImportMasterOrdersCommandHandler() commands.ImportMasterOrdersCommandHandler {
	return commands.NewImportMasterOrdersCommandHandler(c.CreateCreateMasterOrderCommandHandler(), c.logger)
}

func (c *CompositionRoot) CreateSplitOrderCommandHandler() commands.SplitOrderCommandHandler {
	return commands.NewSplitOrderCommandHandler(c.workflowUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRequestAdvanceCommandHandler() commands.RequestAdvanceCommandHandler {
	return commands.NewRequestAdvanceCommandHandler(c.workflowUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateDirectMoveCommandHandler() commands.DirectMoveCommandHandler {
	return commands.NewDirectMoveCommandHandler(c.workflowUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAssignShipDateCommandHandler() commands.AssignShipDateCommandHandler {
	return commands.NewAssignShipDateCommandHandler(c.workflowUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAllocatePlantCommandHandler() commands.AllocatePlantCommandHandler {
	return commands.NewAllocatePlantCommandHandler(c.workflowUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateChangePriorityCommandHandler() commands.ChangePriorityCommandHandler {
	return commands.NewChangePriorityCommandHandler(c.workflowUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateMarkMaterialOrderedCommandHandler() commands.MarkMaterialOrderedCommandHandler {
	return commands.NewMarkMaterialOrderedCommandHandler(c.workflowUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateMarkMaterialReceivedCommandHandler() commands.MarkMaterialReceivedCommandHandler {
	return commands.NewMarkMaterialReceivedCommandHandler(c.workflowUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateSetQAOutcomeCommandHandler() commands.SetQAOutcomeCommandHandler {
	return commands.NewSetQAOutcomeCommandHandler(c.workflowUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateMarkAllFGReadyCommandHandler() commands.MarkAllFGReadyCommandHandler {
	return commands.NewMarkAllFGReadyCommandHandler(c.workflowUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCreateInvoiceCommandHandler() commands.CreateInvoiceCommandHandler {
	return commands.NewCreateInvoiceCommandHandler(c.workflowUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateSweepHealthCommandHandler() commands.SweepHealthCommandHandler {
	return commands.NewSweepHealthCommandHandler(c.historyUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreatePruneHistoryCommandHandler() commands.PruneHistoryCommandHandler {
	return commands.NewPruneHistoryCommandHandler(c.historyUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateGetCustomersQueryHandler() queries.GetCustomersQueryHandler {
	return queries.NewGetCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetImportLogsQueryHandler() queries.GetImportLogsQueryHandler {
	return queries.NewGetImportLogsQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the HTTP server.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.CommandHandlers{
		ImportMasterOrders:   c.CreateImportMasterOrdersCommandHandler(),
		SplitOrder:           c.CreateSplitOrderCommandHandler(),
		RequestAdvance:       c.CreateRequestAdvanceCommandHandler(),
		DirectMove:           c.CreateDirectMoveCommandHandler(),
		AssignShipDate:       c.CreateAssignShipDateCommandHandler(),
		AllocatePlant:        c.CreateAllocatePlantCommandHandler(),
		ChangePriority:       c.CreateChangePriorityCommandHandler(),
		MarkMaterialOrdered:  c.CreateMarkMaterialOrderedCommandHandler(),
		MarkMaterialReceived: c.CreateMarkMaterialReceivedCommandHandler(),
		SetQAOutcome:         c.CreateSetQAOutcomeCommandHandler(),
		MarkAllFGReady:       c.CreateMarkAllFGReadyCommandHandler(),
		CreateInvoice:        c.CreateCreateInvoiceCommandHandler(),
	}, httpin.QueryHandlers{
		GetOrders:     c.CreateGetOrdersQueryHandler(),
		GetOrder:      c.CreateGetOrderQueryHandler(),
		GetCustomers:  c.CreateGetCustomersQueryHandler(),
		GetImportLogs: c.CreateGetImportLogsQueryHandler(),
	}, c.logger)
}

// CreateJobManager returns the scheduled jobs. The config must have passed
// Validate.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	retentionDays, _ := c.config.RetentionDays()
	return jobs.NewJobManager(
		c.CreateSweepHealthCommandHandler(),
		c.CreatePruneHistoryCommandHandler(),
		jobs.Schedule{
			HealthSweep:      c.config.SweepSchedule(),
			HistoryRetention: c.config.RetentionSchedule(),
			RetentionDays:    retentionDays,
		},
		c.logger,
	)
}

type FuncWorkflowUoWFactory func() commands.WorkflowUoW

func (f FuncWorkflowUoWFactory) Create() commands.WorkflowUoW {
	return f()
}

type FuncImportUoWFactory func() commands.ImportUoW

func (f FuncImportUoWFactory) Create() commands.ImportUoW {
	return f()
}

type FuncHistoryUoWFactory func() commands.HistoryUoW

func (f FuncHistoryUoWFactory) Create() commands.HistoryUoW {
	return f()
}
