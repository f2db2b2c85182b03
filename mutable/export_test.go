package mutable

// SetMaxSlots lowers the arena bound and returns a func restoring it.
func SetMaxSlots(n int) (restore func()) {
	old := maxSlots
	maxSlots = n
	return func() { maxSlots = old }
}
