package inventory_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cucumber/godog"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/internal/application/inventory/inventorytest"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

type ledgerTestContext struct {
	store   *inventorytest.Store
	uc      *inventory.RegisterMovementUseCase
	product *entity.Product
	last    *dto.MovementResponse
	err     error
}

func (c *ledgerTestContext) reset() {
	c.store = inventorytest.NewStore()
	c.uc = inventory.NewRegisterMovementUseCase(c.store, c.store.Movements(), c.store.Products(), nil)
	c.product = nil
	c.last = nil
	c.err = nil
}

func (c *ledgerTestContext) aProductWithQuantity(name string, qty int) error {
	cat := c.store.SeedCategory("Geral")
	c.product = c.store.SeedProduct(name, qty, "10.00", cat.ID)
	return nil
}

func (c *ledgerTestContext) record(kind entity.MovementKind, productID string, qty int) {
	in := inventory.MovementInput{ProductID: productID, Quantity: qty}
	var res *dto.MovementResponse
	if kind == entity.MovementIn {
		res, c.err = c.uc.RecordIn(context.Background(), in)
	} else {
		res, c.err = c.uc.RecordOut(context.Background(), in)
	}
	if c.err == nil {
		c.last = res
	}
}

func (c *ledgerTestContext) iRecordAnEntryOfUnits(qty int) error {
	c.record(entity.MovementIn, c.product.ID, qty)
	return nil
}

func (c *ledgerTestContext) iRecordAnExitOfUnits(qty int) error {
	c.record(entity.MovementOut, c.product.ID, qty)
	return nil
}

func (c *ledgerTestContext) iRecordAnExitOfUnitsForAnUnknownProduct(qty int) error {
	c.record(entity.MovementOut, "00000000-0000-0000-0000-000000000999", qty)
	return nil
}

func (c *ledgerTestContext) theProductQuantityIs(want int) error {
	if got := c.store.Quantity(c.product.ID); got != want {
		return fmt.Errorf("quantidade esperada %d, obtida %d", want, got)
	}
	if c.err == nil && c.last != nil && c.last.NewQuantity != want {
		return fmt.Errorf("newQuantity esperado %d, obtido %d", want, c.last.NewQuantity)
	}
	return nil
}

func (c *ledgerTestContext) theLastMovementIsOfUnits(kind string, qty int) error {
	if c.err != nil {
		return fmt.Errorf("erro inesperado: %w", c.err)
	}
	if c.last.Kind != kind || c.last.Quantity != qty {
		return fmt.Errorf("movimento esperado %s/%d, obtido %s/%d", kind, qty, c.last.Kind, c.last.Quantity)
	}
	return nil
}

func (c *ledgerTestContext) expectError(target error) error {
	if !errors.Is(c.err, target) {
		return fmt.Errorf("erro esperado %v, obtido %v", target, c.err)
	}
	return nil
}

func (c *ledgerTestContext) theLedgerHasMovements(n int) error {
	if got := c.store.MovementCount(); got != n {
		return fmt.Errorf("movimentos esperados %d, obtidos %d", n, got)
	}
	return nil
}

func InitializeLedgerScenario(ctx *godog.ScenarioContext) {
	tc := &ledgerTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given
	ctx.Step(`^a product "([^"]*)" with quantity (\d+)$`, tc.aProductWithQuantity)

	// When
	ctx.Step(`^I record an entry of (-?\d+) units$`, tc.iRecordAnEntryOfUnits)
	ctx.Step(`^I record an exit of (\d+) units$`, tc.iRecordAnExitOfUnits)
	ctx.Step(`^I record an exit of (\d+) units for an unknown product$`, tc.iRecordAnExitOfUnitsForAnUnknownProduct)

	// Then
	ctx.Step(`^the product quantity is (\d+)$`, tc.theProductQuantityIs)
	ctx.Step(`^the last movement is "([^"]*)" of (\d+) units$`, tc.theLastMovementIsOfUnits)
	ctx.Step(`^the operation fails with insufficient stock$`, func() error { return tc.expectError(domain.ErrInsufficientStock) })
	ctx.Step(`^the operation fails with product not found$`, func() error { return tc.expectError(domain.ErrProductNotFound) })
	ctx.Step(`^the operation fails with invalid input$`, func() error { return tc.expectError(domain.ErrInvalidInput) })
	ctx.Step(`^the ledger has (\d+) movements$`, tc.theLedgerHasMovements)
}

func TestLedgerFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeLedgerScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/ledger.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
