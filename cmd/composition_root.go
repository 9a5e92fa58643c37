package cmd

import (
	"log/slog"

	"storage/internal/adapters/out/memory"
	"storage/internal/core/application/usecases/commands"
	"storage/internal/core/application/usecases/queries"
	"storage/internal/core/domain/model/location"
	"storage/internal/core/domain/services"
	"storage/internal/jobs"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	location   *location.Location
	uowFactory *memory.UnitOfWorkFactory
}

func NewCompositionRoot(config Config, logger *slog.Logger) (CompositionRoot, error) {
	config = config.WithDefaults()

	basePrice, err := config.ParseBasePrice()
	if err != nil {
		return CompositionRoot{}, err
	}

	loc, err := location.NewLocation(config.LocationDesignation, basePrice)
	if err != nil {
		return CompositionRoot{}, err
	}

	logger.Info("Location created",
		"designation", loc.Designation(),
		"base_price", loc.BasePrice().StringFixed(2),
	)

	return CompositionRoot{
		config:     config,
		logger:     logger,
		location:   loc,
		uowFactory: memory.NewUnitOfWorkFactory(memory.NewStore(loc)),
	}, nil
}

// Designation names the location served by this process.
func (c *CompositionRoot) Designation() string {
	return c.location.Designation()
}

func (c *CompositionRoot) CreateAddCustomerCommandHandler() commands.AddCustomerCommandHandler {
	return commands.NewAddCustomerCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateRentUnitCommandHandler() commands.RentUnitCommandHandler {
	return commands.NewRentUnitCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateReleaseUnitCommandHandler() commands.ReleaseUnitCommandHandler {
	return commands.NewReleaseUnitCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateAllocateUnitCommandHandler() commands.AllocateUnitCommandHandler {
	return commands.NewAllocateUnitCommandHandler(c.commandUoWFactory(), services.NewUnitAllocator())
}

func (c *CompositionRoot) CreateChargeMonthlyRentCommandHandler() commands.ChargeMonthlyRentCommandHandler {
	return commands.NewChargeMonthlyRentCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateGetEmptyUnitsQueryHandler() queries.GetEmptyUnitsQueryHandler {
	return queries.NewGetEmptyUnitsQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetCustomerUnitsQueryHandler() queries.GetCustomerUnitsQueryHandler {
	return queries.NewGetCustomerUnitsQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetUnitQueryHandler() queries.GetUnitQueryHandler {
	return queries.NewGetUnitQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetCustomersQueryHandler() queries.GetCustomersQueryHandler {
	return queries.NewGetCustomersQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetUnitMapQueryHandler() queries.GetUnitMapQueryHandler {
	return queries.NewGetUnitMapQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateChargeMonthlyRentCommandHandler(),
		c.CreateGetEmptyUnitsQueryHandler(),
		jobs.Schedules{
			Billing:   c.config.BillingSchedule,
			Occupancy: c.config.OccupancySchedule,
		},
		c.logger,
	)
}

func (c *CompositionRoot) commandUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
