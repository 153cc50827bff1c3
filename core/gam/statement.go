package gam

import (
	"strconv"
	"strings"
)

// Statement is a PQL filter statement.
type Statement struct {
	Query  string          `xml:"query"`
	Values []ValueMapEntry `xml:"values"`
}

// ValueMapEntry binds a named statement parameter.
type ValueMapEntry struct {
	Key   string `xml:"key"`
	Value Value  `xml:"value"`
}

// Value is a typed PQL value.
type Value struct {
	XsiType string `xml:"xsi:type,attr"`
	Value   string `xml:"value"`
}

func TextValue(s string) Value {
	return Value{XsiType: "TextValue", Value: s}
}

func NumberValue(n int64) Value {
	return Value{XsiType: "NumberValue", Value: strconv.FormatInt(n, 10)}
}

// Where builds "WHERE f1 = :f1 AND f2 = :f2" with one binding per field, in order.
func Where(bindings ...ValueMapEntry) Statement {
	conditions := make([]string, 0, len(bindings))
	for _, b := range bindings {
		conditions = append(conditions, b.Key+" = :"+b.Key)
	}
	return Statement{
		Query:  "WHERE " + strings.Join(conditions, " AND "),
		Values: bindings,
	}
}

// Bind names a statement parameter.
func Bind(key string, v Value) ValueMapEntry {
	return ValueMapEntry{Key: key, Value: v}
}
