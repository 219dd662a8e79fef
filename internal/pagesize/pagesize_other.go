//go:build !(unix || linux || darwin || freebsd || openbsd || netbsd)

package pagesize

import "os"

func osPageSize() int {
	return os.Getpagesize()
}
