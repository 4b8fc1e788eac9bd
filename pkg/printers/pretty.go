package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"github.com/AAC-Open-Source-Pool/mailmind/pkg/client"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/glyph"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/pipeline"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/record"
	"github.com/AAC-Open-Source-Pool/mailmind/pkg/timeutil"
)

const summaryWidth = 72

// PrettyPrint renders grouped records to the terminal.
type PrettyPrint struct {
	ShowID      bool
	ShowSummary bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// TitleWithCount prints the view heading with the filtered item count.
func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d %s\n", count, plural(noun, count))
}

// DateGroups renders every day group in order with a day heading.
func (pp *PrettyPrint) DateGroups(g pipeline.Grouped) {
	if len(g.Groups) == 0 {
		pp.Empty("nothing to show")
		return
	}
	for _, grp := range g.Groups {
		pp.dateHeader(grp)
		pp.Records(grp.Records...)
	}
	if n := len(g.Skipped); n > 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Printf(" %d %s hidden (no usable date)\n\n", n, plural("record", n))
	}
}

func (pp *PrettyPrint) dateHeader(grp pipeline.Group) {
	t := color.New(color.Bold)
	c := color.New(color.Faint)
	_, _ = t.Print(grp.Key)
	_, _ = c.Printf(" - %d %s\n", len(grp.Records), plural("item", len(grp.Records)))
}

// Records renders one row per record, plus an indented summary block when
// ShowSummary is set.
func (pp *PrettyPrint) Records(records ...record.Record) {
	if len(records) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for i := range records {
		r := &records[i]
		cols := []interface{}{marker(r), r.Timestamp.Local().Format("15:04"), r.Sender, r.Title}
		if pp.ShowID {
			cols = append([]interface{}{r.ID}, cols...)
		}
		tbl.AddRow(cols...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	if pp.ShowSummary {
		f := color.New(color.Faint)
		for i := range records {
			r := &records[i]
			_, _ = f.Printf("  %s\n", strings.ReplaceAll(
				wordwrap.String(r.Summary, summaryWidth), "\n", "\n  "))
			if len(r.Tags) > 0 {
				_, _ = f.Printf("  #%s\n", strings.Join(r.Tags, " #"))
			}
		}
	}
	fmt.Println("")
}

// Event renders one calendar event card.
func (pp *PrettyPrint) Event(r record.Record) {
	t := color.New(color.Bold)
	f := color.New(color.Faint)
	g := glyph.Status(string(r.Status))

	_, _ = t.Printf("%s %s\n", attr(g).Sprint(g.Symbol), r.Title)
	_, _ = f.Printf("  %s, %s\n", r.Timestamp.Local().Format("January 2, 2006"),
		timeutil.ClockRange(r.Timestamp, r.End))
	if r.Location != "" {
		_, _ = f.Printf("  at %s\n", r.Location)
	}
	if len(r.Attendees) > 0 {
		_, _ = f.Printf("  with %s\n", strings.Join(r.Attendees, ", "))
	}
	fmt.Printf("  %s\n\n", wordwrap.String(r.Summary, summaryWidth))
}

// Gist renders the categorized inbox row with relative age and read and
// starred markers.
func (pp *PrettyPrint) Gist(records []record.Record, now time.Time) {
	if len(records) == 0 {
		pp.Empty("no mail matches")
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for i := range records {
		r := &records[i]
		tbl.AddRow(gistMarker(r), r.Sender, r.Title, string(r.Category),
			timeutil.Relative(r.Timestamp, now))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Stats prints the processed-mail type tallies.
func (pp *PrettyPrint) Stats(total, events, spam, regular int) {
	f := color.New(color.Faint)
	_, _ = f.Printf("total %d · events %d · spam %d · regular %d\n\n",
		total, events, spam, regular)
}

// Metrics prints the analytics summary cards as a table.
func (pp *PrettyPrint) Metrics(s client.Summary) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Emails Processed", fmt.Sprintf("%d", s.TotalEmailsProcessed))
	tbl.AddRow("Spam Detected", fmt.Sprintf("%d", s.SpamDetected))
	tbl.AddRow("Events Extracted", fmt.Sprintf("%d", s.EventsExtracted))
	tbl.AddRow("Average Urgency", fmt.Sprintf("%.1f", s.AverageUrgency))
	tbl.AddRow("Processing Time", fmt.Sprintf("%.1fs", s.ProcessingTime))
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Legend prints the glyph key.
func (pp *PrettyPrint) Legend(glyphs []glyph.Glyph) {
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, g := range glyphs {
		tbl.AddRow(attr(g).Sprint(g.Symbol), g.Meaning)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Empty prints the faint empty-state line.
func (pp *PrettyPrint) Empty(msg string) {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Printf(" %s\n\n", msg)
}

func marker(r *record.Record) string {
	p := glyph.Priority(string(r.Priority))
	if r.Domain == record.DomainMail {
		t := glyph.MailType(string(r.Type))
		return attr(t).Sprint(t.Symbol) + " " + attr(p).Sprint(p.Symbol)
	}
	return attr(p).Sprint(p.Symbol)
}

func gistMarker(r *record.Record) string {
	parts := make([]string, 0, 2)
	if !r.Read {
		g := glyph.Unread()
		parts = append(parts, attr(g).Sprint(g.Symbol))
	}
	if r.Starred {
		g := glyph.Starred()
		parts = append(parts, attr(g).Sprint(g.Symbol))
	}
	if len(parts) == 0 {
		return " "
	}
	return strings.Join(parts, "")
}

// attr maps the product hex palette onto the nearest ANSI attribute.
func attr(g glyph.Glyph) *color.Color {
	switch g.Color {
	case glyph.ColorHigh:
		return color.New(color.FgRed)
	case glyph.ColorMedium:
		return color.New(color.FgYellow)
	case glyph.ColorLow:
		return color.New(color.FgGreen)
	case glyph.ColorRegular:
		return color.New(color.FgBlue)
	default:
		return color.New(color.FgWhite)
	}
}

func plural(noun string, n int) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}
