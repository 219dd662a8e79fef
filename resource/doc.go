// Package resource provides memory accounting shared by segkit containers.
//
// A Controller tracks the bytes reserved for container blocks. With a hard
// limit configured, reservations beyond the limit are refused. One Controller
// may be shared by many containers; its methods are safe for concurrent use.
// A nil *Controller is valid and tracks nothing.
package resource
