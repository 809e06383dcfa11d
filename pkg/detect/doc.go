// Package detect aggregates the browser, OS, feature and plugin classifiers
// into a single Result.
//
// A Detector reads everything through a navigator.Navigator, so it works the
// same on fixtures, HTTP requests and live browsers. Each axis can be switched
// off with Config, and every axis is guarded independently: if reading the
// environment panics, that axis falls back to its unknown default and the
// rest of the Result is still produced. Detect never returns an error.
//
// # Usage
//
//	d := detect.New(detect.WithLogger(log))
//	res := d.Detect(ctx, navigator.FromRequest(r), detect.Config{SkipPlugins: true})
//	fmt.Println(res.Identifier()) // "Chrome/91 (Windows, 64-bit)"
//
// # HTTP
//
// Middleware stores a Result computed from request headers in the request
// context (see FromContext). Handler mounts a small JSON API:
//
//	r := chi.NewRouter()
//	r.Mount("/detect", detect.Handler(d, cfg))
//
// # Class injection
//
// With Config.InjectClasses set and a target supplied via WithTarget, Detect
// adds the Result's classes to the target. Injection failures are logged and
// never change the Result.
package detect
