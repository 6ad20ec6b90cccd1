// Package errors provides the classified error primitives used across docsite.
//
// Every failure that reaches the CLI is either a plain wrapped error or a
// ClassifiedError carrying a category, a severity and a small context map.
// The category drives the process exit code (see CLIErrorAdapter).
//
//	err := errors.ValidationError("group has no children").
//		WithContext("entry", "navbar[2]").
//		Build()
package errors
