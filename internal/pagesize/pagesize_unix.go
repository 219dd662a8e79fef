//go:build unix || linux || darwin || freebsd || openbsd || netbsd

package pagesize

import "golang.org/x/sys/unix"

func osPageSize() int {
	return unix.Getpagesize()
}
