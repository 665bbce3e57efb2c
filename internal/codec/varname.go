// Package codec implements the golden textual form of programs and
// values: "a <- head ab" style statement lines and "[x,y,z]"/"NULL" value
// rendering, per spec section 6.
package codec

// VarName renders a variable index as the base-26 lowercase name the
// source implementation produces (lib/dsl/utils.cc's stringify(Variable)):
// single letters 'a'..'z' for 0..25; for 26 and up, repeatedly take x%26
// as a trailing digit and divide x by 26 until x<26, then decrement that
// final leftover by one and prepend it, and reverse the whole thing. The
// decrement applies once, to the most-significant digit only, which is
// why 26 renders as "aa" and 27 as "ab" rather than the "ba" and "bb" a
// plain positional base-26 encoding would give.
func VarName(v uint16) string {
	if v < 26 {
		return string(rune('a' + v))
	}
	x := int(v)
	digits := make([]byte, 0, 4)
	for x >= 26 {
		digits = append(digits, byte('a'+x%26))
		x /= 26
	}
	x--
	digits = append(digits, byte('a'+x))
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

// VarIndex is the inverse of VarName. The first character encodes the
// adjusted leading digit (add the decrement back); each following
// character is a standard base-26 digit applied left to right, mirroring
// the reversed construction VarName performs.
func VarIndex(name string) (uint16, bool) {
	if len(name) == 0 {
		return 0, false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < 'a' || name[i] > 'z' {
			return 0, false
		}
	}
	if len(name) == 1 {
		return uint16(name[0] - 'a'), true
	}
	v := int(name[0]-'a') + 1
	for j := 1; j < len(name); j++ {
		v = v*26 + int(name[j]-'a')
	}
	if v < 0 || v > 0xFFFF {
		return 0, false
	}
	return uint16(v), true
}
