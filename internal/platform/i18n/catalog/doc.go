// Package catalog loads the embedded locale catalogs used to render dice
// results and error messages.
//
// Catalog files live under locales/<locale>/<namespace>.yaml and use a small
// YAML subset: quoted locale and namespace headers followed by a messages map
// of quoted keys and values. Every key must start with its namespace.
package catalog
