package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"storage/cmd"
	"storage/internal/core/application/usecases/commands"
	"storage/internal/core/application/usecases/queries"
	"storage/internal/core/domain/model/unit"

	"github.com/shopspring/decimal"
)

type position struct {
	row  int
	slot int
}

type demo struct {
	app *cmd.CompositionRoot
	out io.Writer
}

// runDemo registers two sample customers, rents them three units each, bills
// the month and prints the unit map.
func runDemo(ctx context.Context, app *cmd.CompositionRoot, out io.Writer) error {
	d := demo{app: app, out: out}

	customers := []struct{ name, phone string }{
		{"Pat Perkins", "425-555-1314"},
		{"Chris Connoly", "425-555-3141"},
	}
	for _, c := range customers {
		if err := d.addCustomer(ctx, c.name, c.phone); err != nil {
			return err
		}
	}

	roster, err := d.roster(ctx)
	if err != nil {
		return err
	}
	empty, err := d.emptyCount(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Storage Location : %s\n", app.Designation())
	fmt.Fprintf(out, "Customer count   : %3d\n", len(roster))
	fmt.Fprintf(out, "Empty unit count : %3d\n", empty)

	today := time.Now()
	rentals := []struct {
		customer  int
		positions []position
	}{
		{0, []position{{1, 1}, {8, 2}, {11, 3}}},
		{1, []position{{11, 1}, {11, 2}, {11, 5}}},
	}
	for _, r := range rentals {
		fmt.Fprintf(out, "\nRenting %d units to %s\n", len(r.positions), roster[r.customer].Name)
		for _, p := range r.positions {
			if err = d.rent(ctx, r.customer, p, today); err != nil {
				return err
			}
		}
	}
	fmt.Fprintln(out)

	if err = d.printCounts(ctx); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nShowing storage units, rented and unrented")
	for _, p := range []position{{1, 5}, {11, 5}} {
		summary, err := d.unitSummary(ctx, p)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, summary)
	}
	fmt.Fprintln(out)

	if err = d.printBilling(ctx, roster); err != nil {
		return err
	}

	unitMap, err := app.CreateGetUnitMapQueryHandler().Handle(ctx, queries.NewGetUnitMapQuery())
	if err != nil {
		return err
	}
	fmt.Fprintln(out, unitMap)

	return nil
}

func (d demo) addCustomer(ctx context.Context, name, phone string) error {
	command, err := commands.NewAddCustomerCommand(name, phone)
	if err != nil {
		return err
	}

	handler := d.app.CreateAddCustomerCommandHandler()
	_, err = handler.Handle(ctx, command)
	return err
}

func (d demo) rent(ctx context.Context, customerIndex int, p position, start time.Time) error {
	command, err := commands.NewRentUnitCommand(customerIndex, p.row, p.slot, start)
	if err != nil {
		return err
	}

	handler := d.app.CreateRentUnitCommandHandler()
	rented, err := handler.Handle(ctx, command)
	if err != nil {
		return err
	}
	if !rented {
		fmt.Fprintf(d.out, "Unit (%d, %d) is already rented\n", p.row, p.slot)
	}
	return nil
}

func (d demo) roster(ctx context.Context) ([]queries.CustomerView, error) {
	return d.app.CreateGetCustomersQueryHandler().Handle(ctx, queries.NewGetCustomersQuery())
}

func (d demo) emptyCount(ctx context.Context, kinds ...unit.Kind) (int, error) {
	query, err := queries.NewGetEmptyUnitsQuery(kinds...)
	if err != nil {
		return 0, err
	}

	views, err := d.app.CreateGetEmptyUnitsQueryHandler().Handle(ctx, query)
	if err != nil {
		return 0, err
	}
	return len(views), nil
}

func (d demo) printCounts(ctx context.Context) error {
	empty, err := d.emptyCount(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(d.out, "Empty count                  : %3d\n", empty)

	roster, err := d.roster(ctx)
	if err != nil {
		return err
	}
	for _, c := range roster {
		fmt.Fprintf(d.out, "%-29s: %3d\n", c.Name+"'s unit count", c.Units)
	}

	for _, kind := range unit.Kinds() {
		count, err := d.emptyCount(ctx, kind)
		if err != nil {
			return err
		}
		fmt.Fprintf(d.out, "%-29s: %3d\n", "Empty "+kind.String()+" unit count", count)
	}

	return nil
}

func (d demo) unitSummary(ctx context.Context, p position) (string, error) {
	query, err := queries.NewGetUnitQuery(p.row, p.slot)
	if err != nil {
		return "", err
	}

	view, err := d.app.CreateGetUnitQueryHandler().Handle(ctx, query)
	if err != nil {
		return "", err
	}
	return view.Summary, nil
}

func (d demo) printBilling(ctx context.Context, roster []queries.CustomerView) error {
	for _, c := range roster {
		fmt.Fprintf(d.out, "%-45s:  $%8s\n", c.Name+"'s balance before charging monthly rent", money(c.Balance))
	}

	handler := d.app.CreateChargeMonthlyRentCommandHandler()
	summary, err := handler.Handle(ctx, commands.NewChargeMonthlyRentCommand())
	if err != nil {
		return err
	}

	for _, charge := range summary.Charges {
		fmt.Fprintf(d.out, "%-45s:  $%8s\n", charge.CustomerName+"'s balance after charging monthly rent", money(charge.Balance))
	}
	fmt.Fprintf(d.out, "%-45s:  $%8s\n", "Total rent charged for all units", money(summary.Total))

	return nil
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
