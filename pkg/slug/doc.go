// Package slug converts arbitrary strings into compact ASCII identifiers.
//
// Diacritics are folded with golang.org/x/text normalization, runs of
// anything other than ASCII letters and digits collapse to one separator,
// and the result is lower-cased by default. The output is safe both as a
// URL segment and as a CSS class token, which is how the classlist package
// uses it for plugin names.
//
// # Usage
//
//	slug.Make("Hello, Wörld!")                       // "hello-world"
//	slug.Make("Adobe Flash Player", slug.Separator("_")) // "adobe_flash_player"
//	slug.Make("Java(TM) Plug-in", slug.MaxLength(8))  // "java-tm"
package slug
