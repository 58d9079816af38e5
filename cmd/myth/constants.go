package main

// Valid export formats.
var validFormats = []string{"json", "csv", "markdown"}

// placeholderLabel replaces inline placeholder images in tabular output.
const placeholderLabel = "(placeholder)"
