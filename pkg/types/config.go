package types

import "errors"

// Config holds the session settings loaded from config.yaml. Everything in
// here is cosmetic or operational; nothing changes what the store does.
type Config struct {
	Currency      string `json:"currency" yaml:"currency"`             // Display symbol for prices.
	DefaultCourse string `json:"default_course" yaml:"default_course"` // Course preselected on the form.
	LogLevel      string `json:"log_level" yaml:"log_level"`           // debug, info, warn, error.
	LogFile       string `json:"log_file" yaml:"log_file"`             // TUI log destination; empty discards.
}

// Config validation errors.
var (
	ErrCurrencyEmpty        = errors.New("currency must not be empty")
	ErrDefaultCourseUnknown = errors.New("default_course must be Breakfast, Mains, or Desserts")
)

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Currency == "" {
		return ErrCurrencyEmpty
	}
	if _, err := ParseCourse(c.DefaultCourse); err != nil {
		return ErrDefaultCourseUnknown
	}
	return nil
}

// FormCourse returns the configured default course for the creation form,
// falling back to DefaultCourse when the value does not parse.
func (c Config) FormCourse() Course {
	course, err := ParseCourse(c.DefaultCourse)
	if err != nil {
		return DefaultCourse
	}
	return course
}
