package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/eggrid/eggrid/pkg/termgrid"
)

// eggLabels name the seeded items, cycling when the grid holds more items
// than the list.
var eggLabels = []string{
	"sunny",
	"poached",
	"scrambled",
	"benedict",
	"omelette",
	"deviled",
	"frittata",
	"shakshuka",
	"over easy",
	"soft boiled",
	"meringue",
	"quiche",
}

// itemLabel returns the label for the n-th item added to the grid.
func itemLabel(n int) string {
	label := eggLabels[n%len(eggLabels)]
	if n >= len(eggLabels) {
		label = fmt.Sprintf("%s %d", label, n/len(eggLabels)+1)
	}
	return label
}

// seedItems fills the grid with its starting items in reading order.
func seedItems(g *termgrid.Grid, count int) {
	for i := 0; i < count; i++ {
		g.AddItem(itemLabel(i))
	}
}

// loadDotEnv reads environment variables from path. A missing file is not
// an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
