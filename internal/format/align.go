package format

// Align4 returns n aligned up to the next 4-byte boundary.
//
// Example:
//
//	Align4(0) = 0
//	Align4(6) = 8
//	Align4(8) = 8
func Align4(n int) int {
	return (n + KeyTableAlignmentMask) &^ KeyTableAlignmentMask
}

// Padding returns the number of zero bytes that bring n up to the next
// 4-byte boundary. The result is always in [0, 3].
func Padding(n int) int {
	return Align4(n) - n
}
