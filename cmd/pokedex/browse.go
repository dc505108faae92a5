package main

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/pokedex"
	"github.com/fwojciec/pokedex/detail"
)

const browseHelp = `Commands:
  type T        toggle a type filter (at most two)
  types         list the selectable types
  clear         clear the type filters
  search [term] filter by name (no term clears the search)
  accept        search for the suggested name
  next, prev    change page
  page N        jump to page N
  show NAME     show details for a Pokémon
  close         close the detail view
  help          show this help
  quit          exit`

// Run executes the browse command.
func (c *BrowseCmd) Run(deps *Dependencies) error {
	cat, idx, err := deps.loadCatalog(c.CatalogSource)
	if err != nil {
		return err
	}

	b := &browser{
		deps:   deps,
		src:    c.CatalogSource,
		cat:    cat,
		idx:    idx,
		types:  deps.knownTypes(c.CatalogSource, cat),
		viewer: detail.NewViewer(deps.Aggregator),
	}
	defer b.viewer.Close()

	b.render()

	sc := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(deps.Stdout, "> ")
		if !sc.Scan() {
			break
		}
		if quit := b.exec(sc.Text()); quit {
			break
		}
	}
	return sc.Err()
}

// browser holds the interactive session state.
type browser struct {
	deps   *Dependencies
	src    CatalogSource
	cat    *pokedex.Catalog
	idx    pokedex.SearchIndex
	types  []string
	viewer *detail.Viewer

	state pokedex.FilterState
	last  pokedex.Result
}

func (b *browser) render() {
	b.last = pokedex.Apply(b.cat, b.idx, b.state)
	renderPage(b.deps.Stdout, b.state, b.last, b.deps.cardsFor(b.src, b.last.Entries))
}

// exec runs one command line and reports whether the session should end.
func (b *browser) exec(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, arg := strings.ToLower(fields[0]), strings.Join(fields[1:], " ")
	out := b.deps.Stdout

	switch cmd {
	case "type":
		if arg == "" {
			fmt.Fprintln(out, "usage: type T")
			return false
		}
		if !isKnownType(b.types, arg) {
			fmt.Fprintf(out, "Unknown type %q. Type 'types' to list them.\n", arg)
			return false
		}
		if !b.state.ToggleType(arg) {
			fmt.Fprintf(out, "At most %d types can be selected.\n", pokedex.MaxSelectedTypes)
			return false
		}
		b.render()
	case "types":
		fmt.Fprintln(out, strings.Join(b.types, ", "))
	case "clear":
		b.state.ClearTypes()
		b.render()
	case "search":
		b.state.SetSearchTerm(arg)
		b.render()
	case "accept":
		if b.last.Suggestion == "" {
			fmt.Fprintln(out, "No suggestion to accept.")
			return false
		}
		b.state.SetSearchTerm(b.last.Suggestion)
		b.render()
	case "next":
		if !b.state.NextPage(b.last.TotalPages) {
			fmt.Fprintln(out, "Already on the last page.")
			return false
		}
		b.render()
	case "prev":
		if !b.state.PrevPage() {
			fmt.Fprintln(out, "Already on the first page.")
			return false
		}
		b.render()
	case "page":
		n, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintln(out, "usage: page N")
			return false
		}
		b.state.SetPage(min(n, max(b.last.TotalPages, 1)))
		b.render()
	case "show":
		b.show(arg)
	case "close":
		b.viewer.Close()
		b.render()
	case "help":
		fmt.Fprintln(out, browseHelp)
	case "quit", "exit":
		return true
	default:
		fmt.Fprintf(out, "Unknown command %q. Type 'help' for commands.\n", cmd)
	}
	return false
}

func (b *browser) show(name string) {
	if name == "" {
		fmt.Fprintln(b.deps.Stdout, "usage: show NAME")
		return
	}

	var (
		rec *pokedex.DetailRecord
		err error
	)
	if e, ok := b.cat.Lookup(name); ok {
		rec, err = b.viewer.Open(b.deps.Ctx, e)
	} else {
		rec, err = b.viewer.OpenByName(b.deps.Ctx, name)
	}
	switch {
	case errors.Is(err, detail.ErrStale):
		return
	case pokedex.ErrorCode(err) == pokedex.ENOTFOUND:
		fmt.Fprintf(b.deps.Stdout, "Pokémon %q not found.\n", name)
		return
	case err != nil:
		fmt.Fprintf(b.deps.Stdout, "error: %s\n", pokedex.ErrorMessage(err))
		return
	}

	renderDetail(b.deps.Stdout, rec, "all", miniaturesFor(b.deps, rec, "all"))
}
