// Package chrome captures navigator snapshots from a live Chrome instance
// over the DevTools protocol (chromedp) and injects detection classes back
// into the page.
//
//	s, err := chrome.NewSession(ctx, chrome.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	if err := s.Navigate(ctx, "https://example.com"); err != nil {
//	    return err
//	}
//	snap, err := s.Snapshot(ctx)
//	// ...
//	d := detect.New(detect.WithTarget(s))
//	d.Detect(ctx, snap, detect.Config{InjectClasses: true})
//
// Config can be loaded from CHROME_* environment variables with pkg/config.
package chrome
