// Package common contains the logging facilities shared by the endianprobe
// packages. Library code logs through Log, which discards everything until a
// binary installs its own Logger with SetLogger.
package common
