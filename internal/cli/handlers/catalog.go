package handlers

import (
	"fmt"

	"github.com/xolan/sip/internal/cli"
)

// ListDrinks prints the drink catalog
func ListDrinks(deps *cli.Deps) {
	c, err := deps.Services.Catalog.Get()
	if err != nil {
		deps.Fail("Failed to load the drink catalog", err, "Check catalog_path in your config, or remove it to use the built-in catalog")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Drinks (%s catalog):\n", c.Source)
	cli.CatalogTable(deps.Stdout, c)
	_, _ = fmt.Fprintln(deps.Stdout, "Log one with: sip <drink name> [--ago 30] [--at 21:15]")
}
