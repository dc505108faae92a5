package main

import (
	"fmt"

	"github.com/fwojciec/pokedex"
)

// Run executes the types command.
func (c *TypesCmd) Run(deps *Dependencies) error {
	types, err := deps.API.ListTypes(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pokedex.ErrorMessage(err))
		return err
	}

	for _, t := range types {
		fmt.Fprintln(deps.Stdout, t)
	}
	return nil
}
