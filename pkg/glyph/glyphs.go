package glyph

import "fmt"

// Glyph pairs a terminal symbol with the record attribute it marks.
type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
	Color   string // hex display color
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	italicCode    = 3
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

// Display colors shared by every view. The hex values are part of the
// product's visual contract, the terminal layers map them to the nearest
// ANSI color.
const (
	ColorHigh      = "#e74c3c"
	ColorMedium    = "#f39c12"
	ColorLow       = "#27ae60"
	ColorNeutral   = "#95a5a6"
	ColorEvent     = "#27ae60"
	ColorSpam      = "#e74c3c"
	ColorRegular   = "#3498db"
	ColorConfirmed = "#27ae60"
	ColorTentative = "#f39c12"
	ColorCancelled = "#e74c3c"
)

func Priority(p string) Glyph {
	switch p {
	case "high":
		return Glyph{Key: "!", Symbol: "●", Meaning: "high priority", Color: ColorHigh}
	case "low":
		return Glyph{Key: ".", Symbol: "●", Meaning: "low priority", Color: ColorLow}
	case "medium":
		return Glyph{Key: "-", Symbol: "●", Meaning: "medium priority", Color: ColorMedium}
	}
	return Glyph{Key: "?", Symbol: "○", Meaning: "unknown priority", Color: ColorNeutral}
}

func MailType(t string) Glyph {
	switch t {
	case "event":
		return Glyph{Key: "e", Symbol: "◆", Meaning: "event extracted", Color: ColorEvent}
	case "spam":
		return Glyph{Key: "s", Symbol: "⊘", Meaning: "spam detected", Color: ColorSpam}
	}
	return Glyph{Key: "m", Symbol: "✉", Meaning: "regular mail", Color: ColorRegular}
}

func Status(s string) Glyph {
	switch s {
	case "tentative":
		return Glyph{Key: "~", Symbol: "◑", Meaning: "tentative event", Color: ColorTentative}
	case "cancelled":
		return Glyph{Key: "x", Symbol: "✘", Meaning: "cancelled event", Color: ColorCancelled}
	case "confirmed":
		return Glyph{Key: "c", Symbol: "●", Meaning: "confirmed event", Color: ColorConfirmed}
	}
	return Glyph{Key: "?", Symbol: "○", Meaning: "unknown status", Color: ColorNeutral}
}

func Starred() Glyph {
	return Glyph{Key: "*", Symbol: "★", Meaning: "starred", Color: ColorMedium}
}

func Unread() Glyph {
	return Glyph{Key: "u", Symbol: "◉", Meaning: "unread", Color: ColorRegular}
}

// DefaultGlyphs returns the legend shown by `mailmind key`.
func DefaultGlyphs() []Glyph {
	return []Glyph{
		Priority("high"),
		Priority("medium"),
		Priority("low"),
		MailType("regular"),
		MailType("event"),
		MailType("spam"),
		Status("confirmed"),
		Status("tentative"),
		Status("cancelled"),
		Starred(),
		Unread(),
	}
}
