// Package layout holds the screen geometry of the dialog box and the text
// shaping that goes with it, kept free of any ebiten dependency.
package layout

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// Dialog box geometry in screen pixels.
const (
	DialogX          = 200
	DialogY          = 400
	DialogWidth      = 580
	DialogHeight     = 150
	DialogLineHeight = 24
	DialogPadding    = 8

	PortraitX    = 40
	PortraitY    = 400
	PortraitSize = 128

	DialogTitle = "A raging battle against a unicorn"
)

// MaxDialogLines is how many text rows fit under the title.
const MaxDialogLines = (DialogHeight-DialogPadding*2)/DialogLineHeight - 1

// WrapTaunts word-wraps every taunt to width columns and returns the last
// maxLines rows, oldest first. A word longer than width stays on its own row.
func WrapTaunts(taunts []string, width uint, maxLines int) []string {
	var rows []string
	for _, taunt := range taunts {
		rows = append(rows, strings.Split(wordwrap.WrapString(taunt, width), "\n")...)
	}
	if maxLines > 0 && len(rows) > maxLines {
		rows = rows[len(rows)-maxLines:]
	}
	return rows
}

// LineY returns the baseline of dialog row i, counting the title as row 0.
func LineY(i int) int {
	return DialogY + DialogPadding + (i+1)*DialogLineHeight - DialogLineHeight/3
}
