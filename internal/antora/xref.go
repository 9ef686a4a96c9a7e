package antora

import "strings"

const (
	indexPage = "index.adoc"
	// LineSeparator terminates every generated line.
	LineSeparator = "\n"
)

// IndexXref links a group's index page from another module.
func IndexXref(module, key string) string {
	return "xref:" + module + ":" + key + "/" + indexPage + "[]"
}

// localXref links a page inside the same module.
func localXref(parts ...string) string {
	return "xref:" + strings.Join(parts, "/") + "[]"
}

// Include returns the include directive for a feature partial.
func Include(featuresModule, filename string) string {
	return "include::" + featuresModule + ":partial$" + filename + "[]"
}

func bullet(depth int, text string) string {
	return strings.Repeat("*", depth) + " " + text + LineSeparator
}
