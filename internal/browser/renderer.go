// internal/browser/renderer.go
package browser

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/chromedp/chromedp"
)

// Renderer fetches pages through headless Chrome for sources that only
// produce their content client-side. It satisfies the same contract as the
// plain HTTP client: one URL in, rendered HTML out.
type Renderer struct {
	config RendererConfig
}

// RendererConfig defines configuration options for the headless fetch.
type RendererConfig struct {
	UserAgent     string
	Timeout       time.Duration
	WaitDelay     time.Duration
	DisableImages bool
}

// NewRenderer creates a renderer with the specified configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Timeout == 0 {
		config.Timeout = 45 * time.Second
	}
	return &Renderer{config: config}
}

// Fetch navigates to the URL, waits for the body to be ready, and returns the
// rendered outer HTML.
func (r *Renderer) Fetch(ctx context.Context, targetURL string) (string, error) {
	parsed, err := url.Parse(targetURL)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return "", fmt.Errorf("malformed or non-absolute URL: %s", targetURL)
	}

	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.DisableGPU,
		chromedp.NoSandbox, // Required for Docker environments
		chromedp.Headless,
	}
	if r.config.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(r.config.UserAgent))
	}
	if r.config.DisableImages {
		opts = append(opts, chromedp.Flag("blink-settings", "imagesEnabled=false"))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, r.config.Timeout)
	defer cancelRun()

	tasks := []chromedp.Action{
		chromedp.Navigate(targetURL),
		chromedp.WaitReady("body"),
	}
	if r.config.WaitDelay > 0 {
		tasks = append(tasks, chromedp.Sleep(r.config.WaitDelay))
	}

	var html string
	tasks = append(tasks, chromedp.OuterHTML("html", &html))

	if err := chromedp.Run(runCtx, tasks...); err != nil {
		return "", fmt.Errorf("browser fetch of %s failed: %w", targetURL, err)
	}
	return html, nil
}
