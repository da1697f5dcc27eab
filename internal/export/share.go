package export

import (
	"net/url"

	"github.com/jimezsa/jobfeed/internal/models"
)

// ShareTarget is an external destination a job can be shared to.
type ShareTarget string

const (
	ShareLinkedIn ShareTarget = "linkedin"
	ShareX        ShareTarget = "x"
	ShareWhatsApp ShareTarget = "whatsapp"
	ShareEmail    ShareTarget = "email"
)

// ShareTargets lists targets in display order.
var ShareTargets = []ShareTarget{ShareLinkedIn, ShareX, ShareWhatsApp, ShareEmail}

// ShareLink is a derived share URL for one target.
type ShareLink struct {
	Target ShareTarget `json:"target"`
	URL    string      `json:"url"`
}

// ShareLinks derives share URLs from the job's apply link. A job without a
// real apply link has nothing to share.
func ShareLinks(job models.Job) []ShareLink {
	link := applyURL(job)
	if link == "" {
		return nil
	}
	text := job.Title + " at " + job.Company

	links := make([]ShareLink, 0, len(ShareTargets))
	for _, target := range ShareTargets {
		links = append(links, ShareLink{Target: target, URL: shareURL(target, link, text)})
	}
	return links
}

func shareURL(target ShareTarget, link string, text string) string {
	switch target {
	case ShareLinkedIn:
		return "https://www.linkedin.com/sharing/share-offsite/?" + url.Values{"url": {link}}.Encode()
	case ShareX:
		return "https://twitter.com/intent/tweet?" + url.Values{"text": {text}, "url": {link}}.Encode()
	case ShareWhatsApp:
		return "https://wa.me/?" + url.Values{"text": {text + " " + link}}.Encode()
	default:
		return "mailto:?" + (url.Values{"subject": {text}, "body": {link}}).Encode()
	}
}
