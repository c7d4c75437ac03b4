// Menu command builds a one-shot menu from catalog entries and prints it
// grouped by course.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/petals-kitchen/menubook/internal/catalog"
	"github.com/petals-kitchen/menubook/internal/logging"
	"github.com/petals-kitchen/menubook/pkg/types"
)

var menuAdd []string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Build a menu from catalog dishes and print it grouped by course",
	Long: `Menu opens a fresh session, adds each named catalog dish in order
(repeats allowed — every add produces a distinct item), and prints the
resulting menu grouped by course with item counts.

Example:
  menubook menu --add "Berry Pancakes" --add "Pink Pasta" --add "Vanilla Tart"
  menubook menu --add "Rose Latte" --add "Rose Latte" --json`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringArrayVar(&menuAdd, "add", nil, "catalog dish to add (repeatable)")
}

// groupedMenu is the JSON shape of the printed menu.
type groupedMenu struct {
	Courses []menuSection `json:"courses"`
	Total   int           `json:"total"`
}

type menuSection struct {
	Course types.Course      `json:"course"`
	Count  int               `json:"count"`
	Items  []*types.MenuItem `json:"items"`
}

func runMenu(cmd *cobra.Command, args []string) error {
	logging.Setup(cfg.LogLevel)

	session, err := openSessionStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "menu:", err)
		os.Exit(exitSysError)
	}
	defer func() { _ = session.Close() }()

	for _, name := range menuAdd {
		entry, err := catalog.Find(name)
		if err != nil {
			if errors.Is(err, types.ErrNotFound) {
				fmt.Fprintf(os.Stderr, "no catalog dish named %q (see: menubook catalog)\n", name)
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "menu:", err)
			os.Exit(exitSysError)
		}
		if _, err := session.Add(entry); err != nil {
			fmt.Fprintln(os.Stderr, "menu:", err)
			os.Exit(exitSysError)
		}
	}

	if flagJSON {
		grouped := groupedMenu{Courses: []menuSection{}}
		for _, course := range types.Courses() {
			items, err := session.ItemsByCourse(course)
			if err != nil {
				return err
			}
			grouped.Courses = append(grouped.Courses, menuSection{Course: course, Count: len(items), Items: items})
			grouped.Total += len(items)
		}
		return printJSON(grouped)
	}

	return printGroupedMenu(session)
}
