// Package types defines the project record type, the status enumeration,
// the store configuration, and the standard error types shared by the
// workbook store and the tool server.
package types
