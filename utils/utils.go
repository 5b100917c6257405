package utils

// IfThenElse returns a when condition holds, b otherwise.
func IfThenElse(condition bool, a interface{}, b interface{}) interface{} {
	if condition {
		return a
	}
	return b
}

// StringIn reports whether s equals any element of list.
func StringIn(s string, list []string) bool {
	for _, l := range list {
		if l == s {
			return true
		}
	}
	return false
}
