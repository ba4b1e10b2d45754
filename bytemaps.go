package strjson

const (
	maskToHex      = "0123456789abcdef"
	maskToHexUpper = "0123456789ABCDEF"
)

// maskFromHex maps a hex digit byte to its value, 0xff for anything else.
var maskFromHex = func() (m [256]byte) {
	for i := range m {
		m[i] = 0xff
	}
	for c := byte('0'); c <= '9'; c++ {
		m[c] = c - '0'
	}
	for c := byte('a'); c <= 'f'; c++ {
		m[c] = 10 + c - 'a'
	}
	for c := byte('A'); c <= 'F'; c++ {
		m[c] = 10 + c - 'A'
	}
	return
}()

func toHex(c byte) byte {
	return maskToHex[c&0xF]
}

func toHexUpper(c byte) byte {
	return maskToHexUpper[c&0xF]
}

func fromHex(c byte) byte {
	return maskFromHex[c]
}
