package deckgen

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-deckgen/internal/fileutil"
	"github.com/alnah/go-deckgen/internal/process"
)

// pdfConverter turns report HTML into PDF bytes.
type pdfConverter interface {
	ToPDF(ctx context.Context, html string) ([]byte, error)
	Close() error
}

var _ pdfConverter = (*chromePrinter)(nil)

// Report page geometry in inches (US Letter).
const (
	paperWidthInches  = 8.5
	paperHeightInches = 11
	marginInches      = 0.5
)

// chromePrinter prints HTML through a headless Chrome started on first use
// and shared by every report rendered with the same exporter.
// Rod downloads Chromium when no browser is installed.
type chromePrinter struct {
	timeout time.Duration

	// print renders a page URL; tests replace it to run without a browser.
	print func(ctx context.Context, url string) ([]byte, error)

	mu       sync.Mutex
	launcher *launcher.Launcher
	browser  *rod.Browser
}

func newChromePrinter(timeout time.Duration) *chromePrinter {
	c := &chromePrinter{timeout: timeout}
	c.print = c.printURL
	return c
}

// ToPDF stages html in a temp file so relative asset URLs resolve, then prints it.
func (c *chromePrinter) ToPDF(ctx context.Context, html string) ([]byte, error) {
	path, cleanup, err := fileutil.WriteTempFile(html, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return c.print(ctx, "file://"+path)
}

func (c *chromePrinter) printURL(ctx context.Context, url string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	browser, err := c.connect()
	if err != nil {
		return nil, err
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	wait, err := loadTimeout(ctx, c.timeout)
	if err != nil {
		return nil, err
	}
	if err := page.Timeout(wait).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stream, err := page.PDF(printOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	pdf, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return pdf, nil
}

// loadTimeout bounds page load by the context deadline when one is set.
func loadTimeout(ctx context.Context, fallback time.Duration) (time.Duration, error) {
	deadline, ok := ctx.Deadline()
	if !ok {
		return fallback, nil
	}
	left := time.Until(deadline)
	if left <= 0 {
		return 0, context.DeadlineExceeded
	}
	return left, nil
}

// connect returns the running browser, launching it if needed.
func (c *chromePrinter) connect() (*rod.Browser, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.browser != nil {
		return c.browser, nil
	}

	l := launcher.New()
	bin := os.Getenv("ROD_BROWSER_BIN")
	if bin != "" {
		l = l.Bin(bin)
	}
	// Containers and CI runners lack the namespaces Chrome's sandbox needs.
	if bin != "" || os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	c.launcher = l

	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		c.stopLocked()
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	c.browser = b
	return b, nil
}

// Close shuts the browser down, including helper processes left behind.
func (c *chromePrinter) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var err error
	if c.browser != nil {
		err = c.browser.Close()
		c.browser = nil
	}
	c.stopLocked()
	return err
}

func (c *chromePrinter) stopLocked() {
	if c.launcher == nil {
		return
	}
	_ = process.KillTree(c.launcher.PID())
	c.launcher.Kill()
	c.launcher = nil
}

// printOptions keeps backgrounds so template accent colors survive printing.
func printOptions() *proto.PagePrintToPDF {
	inches := func(v float64) *float64 { return &v }
	return &proto.PagePrintToPDF{
		PaperWidth:      inches(paperWidthInches),
		PaperHeight:     inches(paperHeightInches),
		MarginTop:       inches(marginInches),
		MarginBottom:    inches(marginInches),
		MarginLeft:      inches(marginInches),
		MarginRight:     inches(marginInches),
		PrintBackground: true,
	}
}
