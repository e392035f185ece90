package templates

import (
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

func tupleType(count int) string {
	return "Tuple" + strconv.Itoa(count) + "[" + prefixedStrings("T", count) + "]"
}

func signalParams(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString("s")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(" signal.Signal[T")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(", E]")
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}
