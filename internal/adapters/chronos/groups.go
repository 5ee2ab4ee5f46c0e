package chronos

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.trai.ch/chronos/internal/core/domain"
	"go.trai.ch/zerr"
)

const groupSelector = `select[name="menu2"]`

// FetchGroups downloads the group list page and extracts every listed group.
func (c *Client) FetchGroups(ctx context.Context) ([]domain.Group, error) {
	body, err := c.get(ctx, c.cfg.GroupURL)
	if err != nil {
		wrapped := zerr.With(zerr.Wrap(err, domain.ErrGroupListFetchFailed.Error()), "url", c.cfg.GroupURL)
		c.logger.Error(wrapped)
		return nil, wrapped
	}

	groups, err := ParseGroups(body)
	if err != nil {
		err = zerr.With(err, "url", c.cfg.GroupURL)
		c.logger.Error(err)
		return nil, err
	}

	return groups, nil
}

// ParseGroups extracts groups from the options of the group select element.
// The first option is a placeholder and is skipped.
func ParseGroups(page string) ([]domain.Group, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrGroupListMalformed.Error())
	}

	sel := doc.Find(groupSelector).First()
	if sel.Length() == 0 {
		return nil, zerr.With(domain.ErrGroupListMalformed, "reason", "group select not found")
	}

	options := sel.Find("option")
	if options.Length() == 0 {
		return nil, zerr.With(domain.ErrGroupListMalformed, "reason", "group select has no options")
	}

	groups := make([]domain.Group, 0, options.Length()-1)
	var missing bool
	options.Slice(1, goquery.ToEnd).EachWithBreak(func(_ int, opt *goquery.Selection) bool {
		value, ok := opt.Attr("value")
		if !ok {
			missing = true
			return false
		}
		id, _, _ := strings.Cut(value, ".")
		groups = append(groups, domain.Group{ID: id, Name: opt.Text()})
		return true
	})
	if missing {
		return nil, zerr.With(domain.ErrGroupListMalformed, "reason", "option without value")
	}

	return groups, nil
}
