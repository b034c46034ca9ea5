package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Renderer rasterizes assembled HTML to a paginated PDF file on disk.
type Renderer interface {
	RenderPDF(ctx context.Context, htmlContent string, outputPath string) error
	Close() error
}

// Compile-time interface check
var _ Renderer = (*rodRenderer)(nil)

// A4 page dimensions in inches, with 20mm margins on all four sides.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
	marginInches      = 0.787 // 20mm
)

// requestIdleWindow is how long the page's network must stay quiet before it
// counts as idle.
const requestIdleWindow = 300 * time.Millisecond

// rodRenderer drives a headless Chromium instance via go-rod. The browser is
// launched lazily on first use and reused for subsequent renders; each render
// gets its own page, closed on every exit path.
type rodRenderer struct {
	browserBin string
	timeout    time.Duration
	browser    *rod.Browser
}

// NewRodRenderer creates a renderer. bin overrides the browser executable;
// empty means rod's bundled default. Not safe for concurrent use: callers
// serialize access through a RendererPool.
func NewRodRenderer(bin string, timeout time.Duration) Renderer {
	return &rodRenderer{browserBin: bin, timeout: timeout}
}

// ensureBrowser lazily launches and connects to the browser.
// Sandboxing, GPU, and /dev/shm usage are disabled so the engine runs in
// restrictive container environments.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New().
		NoSandbox(true).
		Set("disable-gpu").
		Set("disable-dev-shm-usage")
	if r.browserBin != "" {
		l = l.Bin(r.browserBin)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	r.browser = browser
	return nil
}

// Close tears down the browser instance.
func (r *rodRenderer) Close() error {
	if r.browser != nil {
		err := r.browser.Close()
		r.browser = nil
		return err
	}
	return nil
}

// RenderPDF loads the HTML as page content, waits until network-derived
// resources are idle, and prints the page to outputPath. On failure no
// output file is left behind.
func (r *rodRenderer) RenderPDF(ctx context.Context, htmlContent string, outputPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := r.ensureBrowser(); err != nil {
		return err
	}

	tmpPath, cleanup, err := writeTempFile(htmlContent)
	if err != nil {
		return err
	}
	defer cleanup()

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + tmpPath})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return context.DeadlineExceeded
		}
	}

	bounded := page.Timeout(timeout)
	if err := bounded.WaitLoad(); err != nil {
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	bounded.WaitRequestIdle(requestIdleWindow, nil, nil, nil)()

	if err := ctx.Err(); err != nil {
		return err
	}

	reader, err := page.PDF(printOptions())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	buf, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	if err := os.WriteFile(outputPath, buf, 0o644); err != nil {
		_ = os.Remove(outputPath)
		return fmt.Errorf("%w: writing output: %v", ErrPDFGeneration, err)
	}
	return nil
}

// printOptions returns the fixed pagination settings: A4 paper, 20mm margins,
// printed backgrounds.
func printOptions() *proto.PagePrintToPDF {
	return &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(paperWidthInches),
		PaperHeight:     floatPtr(paperHeightInches),
		MarginTop:       floatPtr(marginInches),
		MarginBottom:    floatPtr(marginInches),
		MarginLeft:      floatPtr(marginInches),
		MarginRight:     floatPtr(marginInches),
		PrintBackground: true,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

// writeTempFile stores the assembled HTML so the browser can load it through
// a file:// URL. Returns the path and a cleanup function.
func writeTempFile(content string) (path string, cleanup func(), err error) {
	tmpFile, err := os.CreateTemp("", "convertapi-*.html")
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = tmpFile.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, writeErr := tmpFile.WriteString(content); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", writeErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", closeErr)
	}
	return path, cleanup, nil
}
