// Package html renders translated table documents into HTML using pongo2
// templates. The default template bundle is embedded; callers can point the
// renderer at a directory of custom templates that extend the defaults and
// override any of the documented blocks.
package html
