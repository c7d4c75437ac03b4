package types

import "strings"

// Course is the menu category a dish belongs to.
type Course string

// The three menu courses. Display order is Breakfast, Mains, Desserts.
const (
	CourseBreakfast Course = "Breakfast"
	CourseMains     Course = "Mains"
	CourseDesserts  Course = "Desserts"
)

// DefaultCourse is the course preselected on the creation form.
const DefaultCourse = CourseMains

// validCourses is the set of recognized course values.
var validCourses = map[Course]bool{
	CourseBreakfast: true,
	CourseMains:     true,
	CourseDesserts:  true,
}

// courseOrder fixes the display order of course sections.
var courseOrder = []Course{CourseBreakfast, CourseMains, CourseDesserts}

// Courses returns the three courses in display order. The returned slice is a
// copy; callers may reorder it freely.
func Courses() []Course {
	out := make([]Course, len(courseOrder))
	copy(out, courseOrder)
	return out
}

// Valid reports whether c is one of the three recognized courses.
func (c Course) Valid() bool {
	return validCourses[c]
}

// String returns the display name of the course.
func (c Course) String() string {
	return string(c)
}

// ParseCourse resolves a user-supplied course name, ignoring case and
// surrounding whitespace. Returns ErrInvalidCourse for anything that is not
// one of the three courses.
func ParseCourse(s string) (Course, error) {
	name := strings.TrimSpace(s)
	for course := range validCourses {
		if strings.EqualFold(name, string(course)) {
			return course, nil
		}
	}
	return "", ErrInvalidCourse
}
