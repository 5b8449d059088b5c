// Package naming derives every name variant a generated plugin needs from the
// single name the user types: the basic name, the "videojs-" prefixed name,
// the npm scope and package name, and the camel-cased identifiers used in
// source templates.
//
// The Get* functions are total: they never fail and return "" for empty
// input. Validation lives in ValidateName, ValidateScope and New.
package naming
