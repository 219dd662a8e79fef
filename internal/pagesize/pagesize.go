package pagesize

// Fallback is used when the platform reports a non-positive page size.
const Fallback = 4096

// Get returns the memory page size in bytes.
func Get() int {
	if n := osPageSize(); n > 0 {
		return n
	}
	return Fallback
}

// Elements returns how many items of the given width fit in one page.
// The result is at least 1, so items wider than a page get one per block.
func Elements(width uintptr) int {
	if width == 0 {
		return Get()
	}
	n := uintptr(Get()) / width
	if n == 0 {
		return 1
	}
	return int(n)
}
