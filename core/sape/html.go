package sape

import "fmt"

const htmlTemplate = `<script async="async" src="//cdn-rtb.sape.ru/rtb-b/js/%03d/2/%d.js" type="text/javascript"></script>` +
	"\n" + `<div id="SRTB_%d"></div>`

// HTMLCode returns the ad snippet that renders placeID on the configured site.
func (c *Client) HTMLCode(placeID int64) string {
	return fmt.Sprintf(htmlTemplate, c.cfg.SiteID%1000, c.cfg.SiteID, placeID)
}
