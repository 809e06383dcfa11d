package useragent

// Browser name identifiers
const (
	// BrowserUnknown is used when no browser rule matched
	BrowserUnknown = "unknown"

	// BrowserSafari identifies desktop Safari
	BrowserSafari = "safari"

	// BrowserChrome identifies Google Chrome and other Chromium builds
	BrowserChrome = "chrome"

	// BrowserFirefox identifies Mozilla Firefox
	BrowserFirefox = "firefox"

	// BrowserMobileSafari identifies Safari on iPhone and iPad
	BrowserMobileSafari = "mobilesafari"

	// BrowserIE identifies Internet Explorer
	BrowserIE = "ie"

	// BrowserOpera identifies Opera, both Presto and Blink builds
	BrowserOpera = "opera"
)

// Rendering engine identifiers
const (
	EngineUnknown = "unknown"
	EngineWebKit  = "webkit"
	EngineBlink   = "blink"
	EngineGecko   = "gecko"
	EngineTrident = "trident"
	EnginePresto  = "presto"
)

// Operating system family identifiers
const (
	// OSUnknown is used when the platform string gave no usable signal
	OSUnknown = "unknown"

	// OSMac identifies Apple macOS, Intel or PowerPC
	OSMac = "mac"

	// OSWindows identifies Microsoft Windows
	OSWindows = "windows"

	// OSLinux identifies desktop Linux
	OSLinux = "linux"

	// OSAndroid identifies Android on ARM hardware
	OSAndroid = "android"

	// OSiOS identifies Apple iOS and iPadOS
	OSiOS = "ios"
)

// Architecture widths reported by ParseOS.
const (
	Arch32 = 32
	Arch64 = 64
)

// UnknownVersion is reported whenever a version could not be extracted.
const UnknownVersion = "0.0.0"

// Chrome 28 was the first stable release rendered by Blink instead of WebKit.
const firstBlinkChrome = 28
