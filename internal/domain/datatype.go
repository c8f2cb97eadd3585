package domain

// Datatype is the closed set of column types a table can hold. Each one
// occupies a fixed number of bytes inside a row.
type Datatype string

const (
	String  Datatype = "STRING"
	Integer Datatype = "INTEGER"
)

var datatypeLengths = map[Datatype]int{
	String:  16,
	Integer: 8,
}

// MaxTableNameLength is the limit on a table's logical name, counted in
// characters before filename encoding.
const MaxTableNameLength = 255

func AllDatatypes() []Datatype {
	return []Datatype{String, Integer}
}

func (d Datatype) Valid() bool {
	_, ok := datatypeLengths[d]
	return ok
}

// Length returns the fixed slot width of the datatype in bytes.
func (d Datatype) Length() int {
	return datatypeLengths[d]
}
