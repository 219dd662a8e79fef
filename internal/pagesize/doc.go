// Package pagesize reports the host memory page size.
package pagesize
