// Catalog command prints the built-in dish catalog.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petals-kitchen/menubook/internal/catalog"
	"github.com/petals-kitchen/menubook/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [course]",
	Short: "List the built-in dish catalog",
	Long: `Catalog prints the twelve built-in dishes, optionally filtered to one
course (Breakfast, Mains, or Desserts).

Example:
  menubook catalog
  menubook catalog desserts
  menubook catalog --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) error {
	entries := catalog.Entries()
	if len(args) == 1 {
		course, err := types.ParseCourse(args[0])
		if err != nil {
			return fmt.Errorf("unknown course %q (valid: Breakfast, Mains, Desserts)", args[0])
		}
		entries = catalog.ByCourse(course)
	}

	if flagJSON {
		return printJSON(entries)
	}

	for _, entry := range entries {
		printCandidate(entry)
	}
	return nil
}
