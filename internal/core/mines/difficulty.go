package mines

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Difficulty names a preset board configuration.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	// DifficultyCustom has no geometry of its own; every field must be
	// supplied through Overrides.
	DifficultyCustom Difficulty = "custom"
)

var presets = map[Difficulty]Dimensions{
	DifficultyEasy:   {Rows: 9, Columns: 9, Bombs: 10},
	DifficultyMedium: {Rows: 16, Columns: 16, Bombs: 40},
	DifficultyHard:   {Rows: 16, Columns: 30, Bombs: 99},
}

// Preset returns the dimensions of a named preset. Custom has none.
func Preset(d Difficulty) (Dimensions, bool) {
	dims, ok := presets[d]
	return dims, ok
}

// ParseDifficulty normalizes a difficulty name.
func ParseDifficulty(name string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(name)))
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyCustom:
		return d, nil
	default:
		return "", configurationError("difficulty", name, ReasonUnknown)
	}
}

// Resolve turns a difficulty name and optional overrides into validated
// dimensions.
//
// Named presets are seeded first and any supplied override replaces the
// matching field before validation, so an override that no longer fits the
// preset geometry is still rejected. Custom requires all three overrides.
func Resolve(name string, overrides Overrides) (Dimensions, error) {
	d, err := ParseDifficulty(name)
	if err != nil {
		return Dimensions{}, err
	}

	dims, ok := Preset(d)
	if !ok {
		switch {
		case overrides.Rows == nil:
			return Dimensions{}, configurationError("rows", "", ReasonRequired)
		case overrides.Columns == nil:
			return Dimensions{}, configurationError("columns", "", ReasonRequired)
		case overrides.Bombs == nil:
			return Dimensions{}, configurationError("bombs", "", ReasonRequired)
		}
	}

	if overrides.Rows != nil {
		dims.Rows = *overrides.Rows
	}
	if overrides.Columns != nil {
		dims.Columns = *overrides.Columns
	}
	if overrides.Bombs != nil {
		dims.Bombs = *overrides.Bombs
	}

	if err := ValidateDimensions(dims); err != nil {
		return Dimensions{}, err
	}
	return dims, nil
}

// ValidateDimensions enforces rows, columns >= 1 and 0 < bombs < rows*columns.
// A geometry whose cell count overflows int is rejected as too large.
func ValidateDimensions(dims Dimensions) error {
	if dims.Rows < 1 {
		return configurationError("rows", strconv.Itoa(dims.Rows), ReasonNotPositive)
	}
	if dims.Columns < 1 {
		return configurationError("columns", strconv.Itoa(dims.Columns), ReasonNotPositive)
	}
	if dims.Columns > math.MaxInt/dims.Rows {
		return configurationError("columns", fmt.Sprintf("%dx%d", dims.Rows, dims.Columns), ReasonTooLarge)
	}
	if dims.Bombs < 1 {
		return configurationError("bombs", strconv.Itoa(dims.Bombs), ReasonNotPositive)
	}
	if dims.Bombs >= dims.Cells() {
		return configurationError("bombs", strconv.Itoa(dims.Bombs), ReasonNoSafeCell)
	}
	return nil
}
