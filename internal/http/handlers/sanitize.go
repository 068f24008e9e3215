package handlers

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"campaignhub/internal/domain"
)

// Free text typed into the dashboard is forwarded as plain text. Markup is
// stripped; entities are decoded again so "&" survives the round trip.
var plainText = bluemonday.StrictPolicy()

func cleanText(s string) string {
	return strings.TrimSpace(html.UnescapeString(plainText.Sanitize(s)))
}

func cleanList(items []string) []string {
	if items == nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if v := cleanText(item); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func cleanCampaign(c domain.Campaign) domain.Campaign {
	c.Title = cleanText(c.Title)
	c.Community = cleanText(c.Community)
	c.Description = cleanText(c.Description)
	return c
}

func cleanCommunity(c domain.Community) domain.Community {
	c.Name = cleanText(c.Name)
	c.Region = cleanText(c.Region)
	c.Programs = cleanList(c.Programs)
	return c
}

func cleanDonor(d domain.Donor) domain.Donor {
	d.Name = cleanText(d.Name)
	d.Location = cleanText(d.Location)
	d.Interests = cleanList(d.Interests)
	return d
}
