// Package grid provides the read-only cell matrix that table discovery runs on.
package grid

import (
	"math"
	"strconv"
	"time"
)

// Kind is the value kind held by a Cell.
type Kind uint8

const (
	// Empty is the canonical blank state.
	Empty Kind = iota
	// Text holds a string value.
	Text
	// Number holds a numeric value.
	Number
	// Boolean holds a TRUE/FALSE value.
	Boolean
	// Timestamp holds a date-time value.
	Timestamp
)

var kindNames = [...]string{
	Empty:     "empty",
	Text:      "text",
	Number:    "number",
	Boolean:   "boolean",
	Timestamp: "timestamp",
}

// String returns the type tag carried by serialized records.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Cell is one typed value slot of a Grid. The zero value is the Empty cell.
type Cell struct {
	kind Kind
	text string
	num  float64
	b    bool
	ts   time.Time
}

// EmptyCell is the single Empty representation.
var EmptyCell = Cell{}

// TextCell returns a Text cell. An empty string yields EmptyCell.
func TextCell(s string) Cell {
	if s == "" {
		return EmptyCell
	}
	return Cell{kind: Text, text: s}
}

// NumberCell returns a Number cell. NaN yields EmptyCell.
func NumberCell(f float64) Cell {
	if math.IsNaN(f) {
		return EmptyCell
	}
	return Cell{kind: Number, num: f}
}

// BoolCell returns a Boolean cell.
func BoolCell(b bool) Cell {
	return Cell{kind: Boolean, b: b}
}

// TimeCell returns a Timestamp cell. The zero time yields EmptyCell.
func TimeCell(t time.Time) Cell {
	if t.IsZero() {
		return EmptyCell
	}
	return Cell{kind: Timestamp, ts: t}
}

// Kind returns the value kind.
func (c Cell) Kind() Kind { return c.kind }

// IsEmpty reports whether the cell is blank.
func (c Cell) IsEmpty() bool { return c.kind == Empty }

// Value returns the native representation: nil, string, int64 for integral
// numbers, float64, bool or time.Time.
func (c Cell) Value() interface{} {
	switch c.kind {
	case Text:
		return c.text
	case Number:
		if c.num == math.Trunc(c.num) && math.Abs(c.num) < 1<<53 {
			return int64(c.num)
		}
		return c.num
	case Boolean:
		return c.b
	case Timestamp:
		return c.ts
	}
	return nil
}

// String returns the textual form of the value. Empty renders as "".
func (c Cell) String() string {
	switch c.kind {
	case Text:
		return c.text
	case Number:
		if v, ok := c.Value().(int64); ok {
			return strconv.FormatInt(v, 10)
		}
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	case Boolean:
		if c.b {
			return "TRUE"
		}
		return "FALSE"
	case Timestamp:
		if c.ts.Hour() == 0 && c.ts.Minute() == 0 && c.ts.Second() == 0 && c.ts.Nanosecond() == 0 {
			return c.ts.Format("2006-01-02")
		}
		return c.ts.Format("2006-01-02 15:04:05")
	}
	return ""
}
