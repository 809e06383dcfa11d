// Package navigator abstracts the browser environment the detectors read from.
//
// Classifiers never touch a live window or document. They receive a
// Navigator, which can be backed by:
//
//   - a Snapshot literal (tests and fixtures),
//   - FromRequest, which derives user agent and platform from HTTP headers,
//     preferring User-Agent Client Hints over the User-Agent string,
//   - Decode or LoadFile, for snapshots posted by a page script or stored on
//     disk as JSON/YAML,
//   - the chrome subpackage, which captures a Snapshot from a headless Chrome.
//
// # Usage
//
//	snap, err := navigator.Decode(r.Body)
//	if errors.Is(err, navigator.ErrInvalidSnapshot) {
//	    // reject the payload
//	}
//	result := detector.Detect(ctx, snap, detect.Config{})
package navigator
