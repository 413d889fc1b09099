// Package web serves rolls and face tables as HTML fragments.
//
// Pages are plain server-rendered HTML built from templ components. A roll
// is addressed entirely by its query string (pool code, seed and locale), so
// any roll can be shared and replayed by link.
package web
