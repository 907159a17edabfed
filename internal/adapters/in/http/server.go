// Package http exposes the order lifecycle over a REST surface. Handlers
// translate JSON payloads into commands and queries and map application
// errors onto HTTP status codes.
package http

import (
	"log/slog"
	"net/http"

	"production/internal/core/application/usecases/commands"
	"production/internal/core/application/usecases/queries"
	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/core/domain/model/produce"
	"production/internal/core/domain/model/stage"
	"production/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler    commands.CreateOrderCommandHandler
	verifyOrderHandler    commands.VerifyOrderCommandHandler
	admitOrderHandler     commands.AdmitOrderCommandHandler
	completeOrderHandler  commands.CompleteOrderCommandHandler
	deactivateHandler     commands.DeactivateOrderCommandHandler
	proposeBillingHandler commands.ProposeBillingCommandHandler
	confirmBillingHandler commands.ConfirmBillingCommandHandler
	forwardOrderHandler   commands.ForwardOrderCommandHandler
	addPackageHandler     commands.AddPackageCommandHandler
	updatePackageHandler  commands.UpdatePackageCommandHandler

	ordersByStageHandler    queries.GetOrdersByStageQueryHandler
	ordersByStatusHandler   queries.GetOrdersByStatusQueryHandler
	pendingBillingHandler   queries.GetPendingBillingOrdersQueryHandler
	stageSlotsHandler       queries.GetStageSlotsQueryHandler
	packagesForOrderHandler queries.GetPackagesForOrderQueryHandler
	packageHandler          queries.GetPackageQueryHandler

	scanner        ports.Scanner
	labelGenerator ports.LabelGenerator
	logger         *slog.Logger
}

// NewServer creates an HTTP server over the given use cases and device
// collaborators.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	verifyOrderHandler commands.VerifyOrderCommandHandler,
	admitOrderHandler commands.AdmitOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	deactivateHandler commands.DeactivateOrderCommandHandler,
	proposeBillingHandler commands.ProposeBillingCommandHandler,
	confirmBillingHandler commands.ConfirmBillingCommandHandler,
	forwardOrderHandler commands.ForwardOrderCommandHandler,
	addPackageHandler commands.AddPackageCommandHandler,
	updatePackageHandler commands.UpdatePackageCommandHandler,
	ordersByStageHandler queries.GetOrdersByStageQueryHandler,
	ordersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	pendingBillingHandler queries.GetPendingBillingOrdersQueryHandler,
	stageSlotsHandler queries.GetStageSlotsQueryHandler,
	packagesForOrderHandler queries.GetPackagesForOrderQueryHandler,
	packageHandler queries.GetPackageQueryHandler,
	scanner ports.Scanner,
	labelGenerator ports.LabelGenerator,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		verifyOrderHandler:      verifyOrderHandler,
		admitOrderHandler:       admitOrderHandler,
		completeOrderHandler:    completeOrderHandler,
		deactivateHandler:       deactivateHandler,
		proposeBillingHandler:   proposeBillingHandler,
		confirmBillingHandler:   confirmBillingHandler,
		forwardOrderHandler:     forwardOrderHandler,
		addPackageHandler:       addPackageHandler,
		updatePackageHandler:    updatePackageHandler,
		ordersByStageHandler:    ordersByStageHandler,
		ordersByStatusHandler:   ordersByStatusHandler,
		pendingBillingHandler:   pendingBillingHandler,
		stageSlotsHandler:       stageSlotsHandler,
		packagesForOrderHandler: packagesForOrderHandler,
		packageHandler:          packageHandler,
		scanner:                 scanner,
		labelGenerator:          labelGenerator,
		logger:                  logger.With("component", "http"),
	}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/billing/pending", s.GetPendingBillingOrders)
	api.GET("/slots", s.GetStageSlots)

	api.POST("/stages/:stage/scan", s.ScanStage)

	api.POST("/orders/:orderId/verify", s.VerifyOrder)
	api.POST("/orders/:orderId/admit", s.AdmitOrder)
	api.POST("/orders/:orderId/complete", s.CompleteOrder)
	api.POST("/orders/:orderId/deactivate", s.DeactivateOrder)
	api.POST("/orders/:orderId/billing/confirm", s.ConfirmBilling)
	api.POST("/orders/:orderId/forward", s.ForwardOrder)

	api.POST("/orders/:orderId/packages", s.AddPackage)
	api.GET("/orders/:orderId/packages", s.GetPackages)
	api.PUT("/packages/:packageId", s.UpdatePackage)
	api.POST("/packages/:packageId/label", s.GeneratePackageLabel)
}

func (s *Server) respondError(ctx echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.Error("request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
		message = "internal server error"
	}
	return ctx.JSON(code, Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("orderId"))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	st, err := stage.FromString(req.Stage)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID,
		req.OrderNumber, req.JobName, req.Quantity, req.BagType, st)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders?stage=Flexo and
// GET /api/v1/orders?status=InProgress. Exactly one filter is required.
func (s *Server) GetOrders(ctx echo.Context) error {
	stageParam := ctx.QueryParam("stage")
	statusParam := ctx.QueryParam("status")

	switch {
	case stageParam != "" && statusParam != "":
		return badRequest(ctx, "stage and status filters are mutually exclusive")
	case stageParam != "":
		return s.getOrdersByStage(ctx, stageParam)
	case statusParam != "":
		return s.getOrdersByStatus(ctx, statusParam)
	default:
		return badRequest(ctx, "a stage or status filter is required")
	}
}

func (s *Server) getOrdersByStage(ctx echo.Context, stageParam string) error {
	st, err := stage.FromString(stageParam)
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetOrdersByStageQuery(st)
	if err != nil {
		return s.respondError(ctx, err)
	}

	views, err := s.ordersByStageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponses(views))
}

func (s *Server) getOrdersByStatus(ctx echo.Context, statusParam string) error {
	status, err := order.StatusFromString(statusParam)
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	views, err := s.ordersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponses(views))
}

// GetPendingBillingOrders handles GET /api/v1/billing/pending.
func (s *Server) GetPendingBillingOrders(ctx echo.Context) error {
	views, err := s.pendingBillingHandler.Handle(
		ctx.Request().Context(), queries.NewGetPendingBillingOrdersQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponses(views))
}

// GetStageSlots handles GET /api/v1/slots.
func (s *Server) GetStageSlots(ctx echo.Context) error {
	views, err := s.stageSlotsHandler.Handle(
		ctx.Request().Context(), queries.NewGetStageSlotsQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]StageSlotResponse, len(views))
	for i, view := range views {
		response[i] = StageSlotResponse{
			Stage:       view.Stage.String(),
			OrderNumber: view.OrderNumber,
			JobName:     view.JobName,
		}
		if view.OccupantID != nil {
			id := view.OccupantID.String()
			response[i].OccupantID = &id
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ScanStage handles POST /api/v1/stages/:stage/scan. It runs the scanning
// device for the stage and reports the measured parameters.
func (s *Server) ScanStage(ctx echo.Context) error {
	st, err := stage.FromString(ctx.Param("stage"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	params, err := s.scanner.Scan(ctx.Request().Context(), st)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ScanResponse{Parameters: params})
}

// VerifyOrder handles POST /api/v1/orders/:orderId/verify. It checks the
// measured parameters against the order's stage schema without admitting.
func (s *Server) VerifyOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req VerifyRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewVerifyOrderCommand(orderID, req.Parameters)
	if err != nil {
		return s.respondError(ctx, err)
	}

	record, err := s.verifyOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, VerifiedResponse{
		OrderID:    record.OrderID().String(),
		Parameters: record.Parameters(),
		VerifiedAt: record.VerifiedAt(),
	})
}

// AdmitOrder handles POST /api/v1/orders/:orderId/admit. For gated stages
// the body carries the measured parameters, which are verified as part of
// the admission; Packaging admits with an empty body.
func (s *Server) AdmitOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req AdmitRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var record *order.VerifiedRecord
	if len(req.Parameters) > 0 {
		verifyCmd, verifyErr := commands.NewVerifyOrderCommand(orderID, req.Parameters)
		if verifyErr != nil {
			return s.respondError(ctx, verifyErr)
		}
		verified, verifyErr := s.verifyOrderHandler.Handle(ctx.Request().Context(), verifyCmd)
		if verifyErr != nil {
			return s.respondError(ctx, verifyErr)
		}
		record = &verified
	}

	cmd, err := commands.NewAdmitOrderCommand(orderID, record)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.admitOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:orderId/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeactivateOrder handles POST /api/v1/orders/:orderId/deactivate.
func (s *Server) DeactivateOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewDeactivateOrderCommand(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.deactivateHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmBilling handles POST /api/v1/orders/:orderId/billing/confirm. It
// runs the full two-step commit: propose, then confirm.
func (s *Server) ConfirmBilling(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	proposeCmd, err := commands.NewProposeBillingCommand(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	proposal, err := s.proposeBillingHandler.Handle(ctx.Request().Context(), proposeCmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	confirmCmd, err := commands.NewConfirmBillingCommand(proposal)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.confirmBillingHandler.Handle(ctx.Request().Context(), confirmCmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ForwardOrder handles POST /api/v1/orders/:orderId/forward. On success it
// returns the identifier of the successor order at the next stage.
func (s *Server) ForwardOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewForwardOrderCommand(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	successorID, err := s.forwardOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: successorID.String()})
}

// AddPackage handles POST /api/v1/orders/:orderId/packages.
func (s *Server) AddPackage(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req PackageRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAddPackageCommand(orderID,
		req.Length, req.Width, req.Height, req.Weight)
	if err != nil {
		return s.respondError(ctx, err)
	}

	packageID, err := s.addPackageHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: packageID.String()})
}

// GetPackages handles GET /api/v1/orders/:orderId/packages.
func (s *Server) GetPackages(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetPackagesForOrderQuery(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	views, err := s.packagesForOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]PackageResponse, len(views))
	for i, view := range views {
		response[i] = PackageResponse{
			ID:      view.ID.String(),
			OrderID: view.OrderID.String(),
			Length:  view.Length,
			Width:   view.Width,
			Height:  view.Height,
			Weight:  view.Weight,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdatePackage handles PUT /api/v1/packages/:packageId.
func (s *Server) UpdatePackage(ctx echo.Context) error {
	packageID, err := kernel.UUIDFromString(ctx.Param("packageId"))
	if err != nil {
		return badRequest(ctx, "invalid package id")
	}

	var req PackageRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdatePackageCommand(packageID,
		req.Length, req.Width, req.Height, req.Weight)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.updatePackageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GeneratePackageLabel handles POST /api/v1/packages/:packageId/label. The
// body carries the roll metadata; the response is the rendered PDF.
func (s *Server) GeneratePackageLabel(ctx echo.Context) error {
	packageID, err := kernel.UUIDFromString(ctx.Param("packageId"))
	if err != nil {
		return badRequest(ctx, "invalid package id")
	}

	var req LabelRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	pkg, err := s.loadPackage(ctx, packageID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	document, err := s.labelGenerator.Generate(produce.Label{
		RollNo:     req.RollNo,
		Color:      req.Color,
		GSM:        req.GSM,
		Pattern:    req.Pattern,
		FabricType: req.FabricType,
		Treatment:  req.Treatment,
		Technology: req.Technology,
		Package:    pkg,
	})
	if err != nil {
		return s.respondError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="package-label-`+req.RollNo+`.pdf"`)
	return ctx.Blob(http.StatusOK, "application/pdf", document)
}

// loadPackage reads the stored package and rebuilds the domain object the
// label generator consumes.
func (s *Server) loadPackage(ctx echo.Context, packageID kernel.UUID) (*produce.Package, error) {
	query, err := queries.NewGetPackageQuery(packageID)
	if err != nil {
		return nil, err
	}

	view, err := s.packageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return nil, err
	}

	return produce.RestorePackage(view.ID, view.OrderID,
		view.Length, view.Width, view.Height, view.Weight)
}

func orderResponses(views []queries.OrderView) []OrderResponse {
	response := make([]OrderResponse, len(views))
	for i, view := range views {
		response[i] = OrderResponse{
			ID:            view.ID.String(),
			OrderNumber:   view.OrderNumber,
			JobName:       view.JobName,
			Quantity:      view.Quantity,
			BagType:       view.BagType,
			Stage:         view.Stage.String(),
			Status:        view.Status.String(),
			BillingStatus: view.BillingStatus.String(),
			Forwarded:     view.Forwarded,
		}
	}
	return response
}
