package errors

import (
	"fmt"
	"strings"
)

// Convenience constructors for common error patterns

// Config errors

func NoPagesDirectory(probed []string) *LoaderError {
	return New(CategoryConfig, SeverityFatal,
		fmt.Sprintf("no pages directory found (looked for %s)", strings.Join(probed, " and "))).
		WithContext("probed", probed)
}

func ConfigInvalid(field, reason string) *LoaderError {
	return New(CategoryValidation, SeverityFatal, "invalid configuration").
		WithContext("field", field).
		WithContext("reason", reason)
}

func LocaleInvalid(tag string, cause error) *LoaderError {
	return Wrap(cause, CategoryLocale, SeverityFatal, "invalid locale tag").
		WithContext("tag", tag)
}

// Content errors

func MetaParse(path string, cause error) *LoaderError {
	return Wrap(cause, CategoryParse, SeverityFatal, "malformed meta file").
		WithContext("path", path)
}

func FrontMatterParse(path string, cause error) *LoaderError {
	return Wrap(cause, CategoryParse, SeverityFatal, "malformed front matter").
		WithContext("path", path)
}

func ReadFailed(path string, cause error) *LoaderError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "read failed").
		WithContext("path", path)
}

func ListFailed(path string, cause error) *LoaderError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "directory listing failed").
		WithContext("path", path)
}

// Output errors

func CodegenFailed(template string, cause error) *LoaderError {
	return Wrap(cause, CategoryCodegen, SeverityFatal, "code generation failed").
		WithContext("template", template)
}

func IndexWrite(route string, cause error) *LoaderError {
	return Wrap(cause, CategoryIndex, SeverityFatal, "content index write failed").
		WithContext("route", route)
}
