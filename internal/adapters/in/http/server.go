package http

import (
	"context"
	"log/slog"

	"salesflow/internal/core/application/usecases/commands"
	"salesflow/internal/core/application/usecases/queries"
	"salesflow/internal/core/domain/model/order"
	"salesflow/internal/generated/servers"
)

// Handler is any command or query handler that returns a result.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// ExecHandler is a command handler that returns only an error.
type ExecHandler[In any] interface {
	Handle(ctx context.Context, in In) error
}

// CommandHandlers are the write use cases served over HTTP.
type CommandHandlers struct {
	ImportMasterOrders   Handler[commands.ImportMasterOrdersCommand, int]
	SplitOrder           Handler[commands.SplitOrderCommand, commands.SplitResult]
	RequestAdvance       Handler[commands.RequestAdvanceCommand, commands.AdvanceResult]
	DirectMove           Handler[commands.DirectMoveCommand, *order.Order]
	AssignShipDate       Handler[commands.AssignShipDateCommand, *order.Order]
	AllocatePlant        Handler[commands.AllocatePlantCommand, *order.Order]
	ChangePriority       Handler[commands.ChangePriorityCommand, *order.Order]
	MarkMaterialOrdered  ExecHandler[commands.MarkMaterialOrderedCommand]
	MarkMaterialReceived ExecHandler[commands.MarkMaterialReceivedCommand]
	SetQAOutcome         ExecHandler[commands.SetQAOutcomeCommand]
	MarkAllFGReady       ExecHandler[commands.MarkAllFGReadyCommand]
	CreateInvoice        Handler[commands.CreateInvoiceCommand, string]
}

// QueryHandlers are the read use cases served over HTTP.
type QueryHandlers struct {
	GetOrders     Handler[queries.GetOrdersQuery, []queries.OrderSummary]
	GetOrder      Handler[queries.GetOrderQuery, queries.OrderDetail]
	GetCustomers  Handler[queries.GetCustomersQuery, []queries.CustomerSummary]
	GetImportLogs Handler[queries.GetImportLogsQuery, []queries.ImportLogView]
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers, logger *slog.Logger) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
		logger:   logger.With("component", "http_server"),
	}
}
