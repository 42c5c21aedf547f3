// Package common keeps enumerations shared by configuration, rule and
// reporting code, so none of them has to import the others.
package common

//go:generate go tool go-enum --marshal --names --values

// Requested function name casing.
// ENUM(lower, upper)
type Expectation int

// Severity of reported problems, only errors fail the run.
// ENUM(error, warning)
type Severity int

// Specification of requested output type.
// ENUM(text, json, yaml)
type OutputFmt int

// Ext returns file extension usually associated with the format.
func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtJson:
		return ".json"
	case OutputFmtYaml:
		return ".yaml"
	default:
		return ".txt"
	}
}
