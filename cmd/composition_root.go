package cmd

import (
	"log/slog"

	"production/internal/adapters/out/postgres"
	"production/internal/core/application/usecases/commands"
	"production/internal/core/application/usecases/queries"
	"production/internal/core/domain/services"
	"production/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory

	scanner        ports.Scanner
	labelGenerator ports.LabelGenerator
	logger         *slog.Logger
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	scanner ports.Scanner,
	labelGenerator ports.LabelGenerator,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     postgres.NewGormUnitOfWorkFactory(gormDB),
		scanner:        scanner,
		labelGenerator: labelGenerator,
		logger:         logger,
	}
}

func (c *CompositionRoot) Scanner() ports.Scanner {
	return c.scanner
}

func (c *CompositionRoot) LabelGenerator() ports.LabelGenerator {
	return c.labelGenerator
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateVerifyOrderCommandHandler() commands.VerifyOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVerifyOrderCommandHandler(f, services.NewVerificationGate())
}

func (c *CompositionRoot) CreateAdmitOrderCommandHandler() commands.AdmitOrderCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdmitOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDeactivateOrderCommandHandler() commands.DeactivateOrderCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeactivateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateProposeBillingCommandHandler() commands.ProposeBillingCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProposeBillingCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmBillingCommandHandler() commands.ConfirmBillingCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmBillingCommandHandler(f)
}

func (c *CompositionRoot) CreateForwardOrderCommandHandler() commands.ForwardOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewForwardOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAddPackageCommandHandler() commands.AddPackageCommandHandler {
	var f commands.PackageUoWFactory = FuncPackageUoWFactory(func() commands.PackageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddPackageCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdatePackageCommandHandler() commands.UpdatePackageCommandHandler {
	var f commands.PackageUoWFactory = FuncPackageUoWFactory(func() commands.PackageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePackageCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersByStageQueryHandler() queries.GetOrdersByStageQueryHandler {
	return queries.NewGetOrdersByStageQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingBillingOrdersQueryHandler() queries.GetPendingBillingOrdersQueryHandler {
	return queries.NewGetPendingBillingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStageSlotsQueryHandler() queries.GetStageSlotsQueryHandler {
	return queries.NewGetStageSlotsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPackagesForOrderQueryHandler() queries.GetPackagesForOrderQueryHandler {
	return queries.NewGetPackagesForOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPackageQueryHandler() queries.GetPackageQueryHandler {
	return queries.NewGetPackageQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return f()
}

type FuncPackageUoWFactory func() commands.PackageUoW

func (f FuncPackageUoWFactory) Create() commands.PackageUoW {
	return f()
}
