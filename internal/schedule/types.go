package schedule

import (
	"bytes"
	"encoding/json"
)

// Day names as they appear in the source documents, in week order.
var DayNames = []string{"Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi"}

// Canonical slot boundaries in minutes since midnight.
const (
	MorningStart   = 540  // 09:00
	MorningEnd     = 750  // 12:30, coverage boundary for "has morning"
	LunchStart     = 735  // 12:15
	LunchEnd       = 810  // 13:30
	AfternoonStart = 810  // 13:30
	AfternoonEnd   = 1005 // 16:45
)

// Canonical whole-slot time ranges used for synthesized FREE entries.
const (
	MorningSlot   = "09H:00-12H:15"
	AfternoonSlot = "13H:30-16H:45"
)

// Sentinel room values.
const (
	RoomOnline  = "En Ligne"
	RoomUnknown = "Unknown"
)

// Status is the closed set of sentinel course values. Anything else in
// CourseEntry.Course is a real course title.
type Status string

const (
	StatusFree        Status = "FREE"
	StatusNotFree     Status = "NOT-FREE"
	StatusFreeWarning Status = "FREEWARNING"
)

// CourseEntry is one cell of the reconstructed grid: a time range with
// either a course title or a sentinel status, and the room it refers to.
type CourseEntry struct {
	Time   string `json:"time"`
	Course string `json:"course"`
	Room   string `json:"room"`
}

// IsFree reports whether the entry is an unvalidated FREE slot.
func (e CourseEntry) IsFree() bool {
	return e.Course == string(StatusFree)
}

// Metadata holds the best-effort header fields pulled from a class
// section. Absent fields stay empty and are omitted from output.
type Metadata struct {
	Year        string `json:"year,omitempty"`
	Period      string `json:"period,omitempty"`
	Semester    string `json:"semester,omitempty"`
	PrimaryRoom string `json:"primary_room,omitempty"`
}

// ClassSchedule is the reconstructed week for a single class. DayOrder
// records insertion order so output stays deterministic and chronological.
// MarshalJSON owns the encoding; the fields carry no JSON tags.
type ClassSchedule struct {
	Days     map[string][]CourseEntry
	Metadata Metadata

	DayOrder []string
}

// NewClassSchedule returns an empty schedule ready to be populated.
func NewClassSchedule() *ClassSchedule {
	return &ClassSchedule{Days: make(map[string][]CourseEntry)}
}

// SetDay stores the entry list for a day key, tracking insertion order.
func (c *ClassSchedule) SetDay(key string, entries []CourseEntry) {
	if _, ok := c.Days[key]; !ok {
		c.DayOrder = append(c.DayOrder, key)
	}
	c.Days[key] = entries
}

// MarshalJSON emits days in insertion order instead of Go's map order.
func (c *ClassSchedule) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"days":{`)
	for i, key := range c.DayOrder {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(c.Days[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteString(`},"metadata":`)
	m, err := json.Marshal(c.Metadata)
	if err != nil {
		return nil, err
	}
	buf.Write(m)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Document is the root output: class identifier -> schedule, with
// insertion order preserved for deterministic export.
type Document struct {
	classes map[string]*ClassSchedule
	order   []string
}

// NewDocument creates an empty schedule document.
func NewDocument() *Document {
	return &Document{classes: make(map[string]*ClassSchedule)}
}

// Put stores a class schedule. A duplicate identifier overwrites the
// earlier schedule but keeps its original position.
func (d *Document) Put(class string, cs *ClassSchedule) {
	if _, ok := d.classes[class]; !ok {
		d.order = append(d.order, class)
	}
	d.classes[class] = cs
}

// Get returns the schedule for a class identifier.
func (d *Document) Get(class string) (*ClassSchedule, bool) {
	cs, ok := d.classes[class]
	return cs, ok
}

// Classes returns all class identifiers in insertion order.
func (d *Document) Classes() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Len returns the number of classes in the document.
func (d *Document) Len() int {
	return len(d.order)
}

// MarshalJSON emits classes in insertion order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, class := range d.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(class)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(d.classes[class])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
