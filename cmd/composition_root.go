package cmd

import (
	"shipping/internal/adapters/out/postgres"
	"shipping/internal/adapters/out/postgres/methodrepo"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	registry   ports.ProviderRegistry
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, registry ports.ProviderRegistry) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		registry:   registry,
	}
}

func (c *CompositionRoot) CreateSaveShipmentCommandHandler() commands.SaveShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSaveShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateSaveOrderShipmentsCommandHandler() commands.SaveOrderShipmentsCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSaveOrderShipmentsCommandHandler(f, services.NewItemsGrouper())
}

func (c *CompositionRoot) CreateBackfillLegacyShipmentCommandHandler() commands.BackfillLegacyShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBackfillLegacyShipmentCommandHandler(
		f,
		services.NewOrderShipmentHydrator(services.NewItemsGrouper()),
	)
}

func (c *CompositionRoot) CreateGetActiveMethodsQueryHandler() queries.GetActiveMethodsQueryHandler {
	return queries.NewGetActiveMethodsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableMethodsQueryHandler() queries.GetAvailableMethodsQueryHandler {
	return queries.NewGetAvailableMethodsQueryHandler(
		c.registry,
		methodrepo.NewGormMethodRepository(c.gormDB),
		methodrepo.NewGormCurrencyReader(c.gormDB),
		services.NewItemsGrouper(),
	)
}

func (c *CompositionRoot) CreateHydrateOrderQueryHandler() queries.HydrateOrderQueryHandler {
	return queries.NewHydrateOrderQueryHandler(
		c.uowFactory.Create().ShipmentRepository(),
		services.NewOrderShipmentHydrator(services.NewItemsGrouper()),
	)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}
