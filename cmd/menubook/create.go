// Create command adds one user-authored dish to a fresh session and prints
// the result. It is the scripted counterpart of the Create form, and goes
// through the same store-side validation.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/petals-kitchen/menubook/internal/logging"
	"github.com/petals-kitchen/menubook/pkg/types"
)

var (
	createName        string
	createDescription string
	createCourse      string
	createPrice       float64
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a dish and show it as a menu item",
	Long: `Create validates a user-authored dish, adds it to a fresh session
store, and prints the resulting menu item.

Fractional prices are rounded to a whole currency amount before the
price check, exactly as the Create form does.

Example:
  menubook create --name "Vanilla Tart" --description "Crispy base" --price 90
  menubook create --name Tart --description Sweet --course Desserts --price 90 --json`,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "dish name (required)")
	createCmd.Flags().StringVar(&createDescription, "description", "", "dish description (required)")
	createCmd.Flags().StringVar(&createCourse, "course", "", "course (default: the configured default_course)")
	createCmd.Flags().Float64Var(&createPrice, "price", 0, "price in whole currency units (required)")
	_ = createCmd.MarkFlagRequired("name")
	_ = createCmd.MarkFlagRequired("description")
	_ = createCmd.MarkFlagRequired("price")
}

func runCreate(cmd *cobra.Command, args []string) error {
	logging.Setup(cfg.LogLevel)

	course := cfg.FormCourse()
	if createCourse != "" {
		parsed, err := types.ParseCourse(createCourse)
		if err != nil {
			fmt.Fprintf(os.Stderr, "unknown course %q (valid: Breakfast, Mains, Desserts)\n", createCourse)
			os.Exit(exitUserError)
		}
		course = parsed
	}

	session, err := openSessionStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "create:", err)
		os.Exit(exitSysError)
	}
	defer func() { _ = session.Close() }()

	item, err := session.Add(types.Candidate{
		Name:        createName,
		Description: createDescription,
		Course:      course,
		Price:       int64(math.Round(createPrice)),
	})
	if err != nil {
		if errors.Is(err, types.ErrMissingField) || errors.Is(err, types.ErrInvalidPrice) {
			fmt.Fprintln(os.Stderr, "create:", err)
			os.Exit(exitUserError)
		}
		fmt.Fprintln(os.Stderr, "create:", err)
		os.Exit(exitSysError)
	}

	slog.Debug("dish.created", "id", item.ItemID, "course", item.Course)

	if flagJSON {
		return printJSON(item)
	}

	fmt.Printf("Created %s (%s, %s): %s\n", item.Name, item.Course, formatPrice(item.Price), item.ItemID)
	return nil
}
