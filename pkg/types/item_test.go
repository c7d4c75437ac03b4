package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidateValidate(t *testing.T) {
	tests := []struct {
		name      string
		candidate Candidate
		wantErr   error
	}{
		{
			name:      "valid candidate",
			candidate: Candidate{Name: "Tart", Description: "Sweet", Course: CourseDesserts, Price: 90},
		},
		{
			name:      "empty name",
			candidate: Candidate{Name: "", Description: "Good", Course: CourseMains, Price: 50},
			wantErr:   ErrMissingField,
		},
		{
			name:      "whitespace name",
			candidate: Candidate{Name: "   ", Description: "Good", Course: CourseMains, Price: 50},
			wantErr:   ErrMissingField,
		},
		{
			name:      "empty description",
			candidate: Candidate{Name: "Tart", Description: "", Course: CourseMains, Price: 50},
			wantErr:   ErrMissingField,
		},
		{
			name:      "zero price",
			candidate: Candidate{Name: "Tart", Description: "Sweet", Course: CourseDesserts, Price: 0},
			wantErr:   ErrInvalidPrice,
		},
		{
			name:      "negative price",
			candidate: Candidate{Name: "Tart", Description: "Sweet", Course: CourseDesserts, Price: -5},
			wantErr:   ErrInvalidPrice,
		},
		{
			name:      "unknown course",
			candidate: Candidate{Name: "Tart", Description: "Sweet", Course: "Brunch", Price: 90},
			wantErr:   ErrInvalidCourse,
		},
		{
			name:      "missing field reported before price",
			candidate: Candidate{Name: "", Description: "", Course: CourseMains, Price: 0},
			wantErr:   ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.candidate.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCandidateNormalized(t *testing.T) {
	c := Candidate{Name: "  Rose Latte ", Description: "\tCoffee with rose essence\n", Course: CourseBreakfast, Price: 80}
	got := c.Normalized()

	assert.Equal(t, "Rose Latte", got.Name)
	assert.Equal(t, "Coffee with rose essence", got.Description)
	assert.Equal(t, CourseBreakfast, got.Course)
	assert.Equal(t, int64(80), got.Price)

	// Normalized returns a copy; the receiver is untouched.
	assert.Equal(t, "  Rose Latte ", c.Name)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{name: "valid", config: Config{Currency: "R", DefaultCourse: "Mains"}},
		{name: "case-insensitive course", config: Config{Currency: "R", DefaultCourse: "desserts"}},
		{name: "empty currency", config: Config{Currency: "", DefaultCourse: "Mains"}, wantErr: ErrCurrencyEmpty},
		{name: "unknown course", config: Config{Currency: "R", DefaultCourse: "Brunch"}, wantErr: ErrDefaultCourseUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigFormCourse(t *testing.T) {
	assert.Equal(t, CourseDesserts, Config{DefaultCourse: "Desserts"}.FormCourse())
	assert.Equal(t, CourseMains, Config{DefaultCourse: ""}.FormCourse(), "unparseable value falls back to Mains")
}
