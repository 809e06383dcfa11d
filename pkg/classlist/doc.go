// Package classlist turns detection results into CSS class names and applies
// them to a document root element.
//
// Each non-empty scalar of the browser and OS identities becomes a
// "<key>-<value>" class (name-chrome, engine-blink, major-91, family-windows,
// arch-64, ...), and each plugin contributes its sanitized slug. Classes are
// only ever added, never removed, and every Target treats the class list as a
// set, so injecting the same result twice is harmless.
//
// Targets:
//
//   - Set, an in-memory DOMTokenList equivalent,
//   - RewriteHTML, which merges classes into the <html> element of a streamed
//     document,
//   - chrome.Target in the navigator/chrome package, which updates
//     document.documentElement.classList in a live page.
//
// # Usage
//
//	classes := classlist.Classes(result.Browser, result.OS, result.Plugins)
//	if err := classlist.RewriteHTML(w, page, classes); err != nil {
//	    // handle
//	}
package classlist
