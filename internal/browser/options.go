// Package browser provides shared chromedp allocator configuration.
package browser

import "github.com/chromedp/chromedp"

// DefaultUserAgent is a realistic Chrome user agent
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Options returns chromedp allocator options for feed scraping.
// All browser instances should use this for consistent configuration.
func Options(headless bool) []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", headless),

		// Use a realistic user agent
		chromedp.UserAgent(DefaultUserAgent),

		// Realistic window size
		chromedp.WindowSize(1920, 1080),

		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-default-apps", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("no-default-browser-check", true),
	)

	if headless {
		opts = append(opts, chromedp.Flag("disable-gpu", true))
	}

	return opts
}
