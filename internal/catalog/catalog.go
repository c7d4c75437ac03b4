// Package catalog holds the built-in dish catalog: the fixed set of
// candidates offered on the Home screen. The catalog is defined once at
// compile time and never mutated; it is not part of the menu store.
package catalog

import (
	"strings"

	"github.com/petals-kitchen/menubook/pkg/types"
)

// entries is the built-in catalog: four dishes per course.
var entries = []types.Candidate{
	// Breakfast
	{Name: "Pink Morning Toast", Description: "Toasted brioche with strawberry cream", Course: types.CourseBreakfast, Price: 95},
	{Name: "Berry Pancakes", Description: "Soft pancakes topped with berry syrup", Course: types.CourseBreakfast, Price: 110},
	{Name: "Vanilla Smoothie Bowl", Description: "Yogurt, granola & sliced fruits", Course: types.CourseBreakfast, Price: 100},
	{Name: "Rose Latte", Description: "Coffee with rose essence & almond milk", Course: types.CourseBreakfast, Price: 80},

	// Mains
	{Name: "Grilled Chicken Deluxe", Description: "Served with creamy mushroom sauce", Course: types.CourseMains, Price: 250},
	{Name: "Salmon Love", Description: "Grilled salmon with lemon glaze", Course: types.CourseMains, Price: 280},
	{Name: "Pink Pasta", Description: "Creamy beetroot pasta with parmesan", Course: types.CourseMains, Price: 230},
	{Name: "Vegan Plate", Description: "Tofu, veggies & quinoa bowl", Course: types.CourseMains, Price: 190},

	// Desserts
	{Name: "Strawberry Dream", Description: "Soft cake with strawberry frosting", Course: types.CourseDesserts, Price: 95},
	{Name: "Rose Cheesecake", Description: "Light cheesecake with rose syrup", Course: types.CourseDesserts, Price: 100},
	{Name: "Chocolate Kiss", Description: "Dark chocolate mousse with pink cream", Course: types.CourseDesserts, Price: 120},
	{Name: "Vanilla Tart", Description: "Crispy base with vanilla cream", Course: types.CourseDesserts, Price: 90},
}

// Entries returns the full catalog in display order. The returned slice is a
// copy; callers may not reach the built-in data through it.
func Entries() []types.Candidate {
	out := make([]types.Candidate, len(entries))
	copy(out, entries)
	return out
}

// ByCourse returns the catalog entries for one course, preserving catalog
// order. An unknown course yields an empty slice.
func ByCourse(course types.Course) []types.Candidate {
	var out []types.Candidate
	for _, e := range entries {
		if e.Course == course {
			out = append(out, e)
		}
	}
	return out
}

// Find locates a catalog entry by name, ignoring case and surrounding
// whitespace. Returns types.ErrNotFound when no entry matches.
func Find(name string) (types.Candidate, error) {
	want := strings.TrimSpace(name)
	for _, e := range entries {
		if strings.EqualFold(e.Name, want) {
			return e, nil
		}
	}
	return types.Candidate{}, types.ErrNotFound
}
