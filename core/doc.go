// Package core defines the 16-bit word probed by endianprobe and the two ways of
// reading its bytes: an overlay of the word's own storage, whose order follows the
// host, and shift/mask extraction, whose order is the same on every platform.
package core
