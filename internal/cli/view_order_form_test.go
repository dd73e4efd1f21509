package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovenware/bakeboard/internal/teatest"
)

func TestOrderForm_SubmitsExactlyOnce(t *testing.T) {
	app := emptyTestApp(t)
	state := &SharedState{App: app}
	d := teatest.New(t, newOrderFormView(state), 80, 24)

	d.Type("Cafe Luna")
	d.PressEnter()
	d.Type("Sourdough loaf")
	d.PressEnter()
	d.Type("12")
	d.PressEnter()
	d.PressEnter() // due date left blank
	d.PressEnter() // notes left blank

	// Keys that reach the form after completion must not write again.
	d.PressEnter()
	d.PressEnter()

	orders, err := app.Orders.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestOrderForm_CancelWritesNothing(t *testing.T) {
	app := emptyTestApp(t)
	state := &SharedState{App: app}
	d := teatest.New(t, newOrderFormView(state), 80, 24)

	d.Type("Cafe Luna")
	d.PressEsc()

	orders, err := app.Orders.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}
