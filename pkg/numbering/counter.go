package numbering

import "strconv"

// Counter holds the section, subsection and subsubsection counters of one
// document pass.
type Counter struct {
	Section       int
	Subsection    int
	Subsubsection int
}

// Advance records a heading of the given level and returns its dotted number.
// It returns false, leaving the counters untouched, for levels it does not
// number and for headings with no enclosing parent: a level-3 heading before
// any level-2 heading, or a level-4 heading without both parents.
func (c *Counter) Advance(level int) (string, bool) {
	switch level {
	case LevelSection:
		c.Section++
		c.Subsection = 0
		c.Subsubsection = 0
		return strconv.Itoa(c.Section), true

	case LevelSubsection:
		if c.Section == 0 {
			return "", false
		}
		c.Subsection++
		c.Subsubsection = 0
		return strconv.Itoa(c.Section) + "." + strconv.Itoa(c.Subsection), true

	case LevelSubsubsection:
		if c.Section == 0 || c.Subsection == 0 {
			return "", false
		}
		c.Subsubsection++
		return strconv.Itoa(c.Section) + "." + strconv.Itoa(c.Subsection) + "." +
			strconv.Itoa(c.Subsubsection), true

	default:
		return "", false
	}
}

// Reset zeroes all counters.
func (c *Counter) Reset() {
	*c = Counter{}
}
