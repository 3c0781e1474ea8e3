// Package dialect translates date-format strings written with native
// (PHP date()-style) tokens into other formatting dialects: ICU
// SimpleDateFormat, Carbon iso tokens, C-library strftime, Moment.js and Go
// reference layouts. Formats can be given literally or by a locale-aware
// alias such as "date_time".
package dialect

import (
	"fmt"
	"strings"

	cerrors "github.com/salmonumbrella/dt-cli/internal/errors"
)

// Dialect is a family of format-token conventions.
type Dialect int

const (
	// Native is the source dialect; converting to it only resolves aliases.
	Native Dialect = iota
	ICU
	Carbon
	CLib
	Moment
	// Yii2 is the Yii framework's name for ICU patterns.
	Yii2
	GoLayout
)

// Dialects lists every dialect in display order.
var Dialects = []Dialect{Native, ICU, Carbon, CLib, Moment, Yii2, GoLayout}

var names = map[Dialect]string{
	Native:   "native",
	ICU:      "icu",
	Carbon:   "carbon",
	CLib:     "clib",
	Moment:   "moment",
	Yii2:     "yii2",
	GoLayout: "go",
}

func (d Dialect) String() string {
	if name, ok := names[d]; ok {
		return name
	}
	return fmt.Sprintf("Dialect(%d)", int(d))
}

// Parse maps a dialect name to a Dialect. An empty name, "native" and "php"
// select Native.
func Parse(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "native", "php":
		return Native, nil
	case "icu":
		return ICU, nil
	case "carbon":
		return Carbon, nil
	case "clib", "strftime":
		return CLib, nil
	case "moment", "momentjs":
		return Moment, nil
	case "yii2", "yii":
		return Yii2, nil
	case "go", "golang":
		return GoLayout, nil
	}
	return Native, fmt.Errorf("%w: %q", cerrors.ErrUnknownDialect, name)
}

// canonical folds dialect aliases into the dialect whose table they share.
func (d Dialect) canonical() Dialect {
	if d == Yii2 {
		return ICU
	}
	return d
}
