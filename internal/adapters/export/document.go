package export

// document mirrors the Chronos XML export. Only direct children of the root
// element are considered; the root's own name is not checked.
type document struct {
	Weeks   []week   `xml:"span"`
	Options []option `xml:"option"`
	Events  []event  `xml:"event"`
}

type week struct {
	Date  *string `xml:"date,attr"`
	RawIx *string `xml:"rawix,attr"`
}

type option struct {
	Subheading *string `xml:"subheading"`
}

type event struct {
	TimeSort  *string    `xml:"timesort,attr"`
	Colour    *string    `xml:"colour,attr"`
	RawWeeks  *string    `xml:"rawweeks"`
	Day       *string    `xml:"day"`
	Notes     *string    `xml:"notes"`
	Resources *resources `xml:"resources"`
}

type resources struct {
	Groups  []items `xml:"group"`
	Modules []items `xml:"module"`
	Staff   []items `xml:"staff"`
	Rooms   []items `xml:"room"`
}

type items struct {
	Items []string `xml:"item"`
}

// values returns the non-empty item texts of the first category element.
func values(categories []items) []string {
	out := []string{}
	if len(categories) == 0 {
		return out
	}
	for _, item := range categories[0].Items {
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// text returns the value behind p, or "" when the node is absent.
func text(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
