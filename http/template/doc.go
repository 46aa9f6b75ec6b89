/*
Package template parses html/template files out of one or more fs.FS
and builds the variables views render with.

A [Parser] looks a file up in each fs.FS it was given, in order,
so an application can override bundled templates with files of the same name.
*/
package template
