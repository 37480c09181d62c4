package control

const (
	FieldPackage = "Package"
	FieldVersion = "Version"
	FieldDepends = "Depends"
)

// Record is a single paragraph of a package index, keyed by field
// name. Field names are case-sensitive. When a paragraph repeats a
// field, the last occurrence wins.
type Record map[string]string

// Get returns the value of the named field, or an empty
// string if it is absent.
func (r Record) Get(field string) string {
	return r[field]
}

func (r Record) Package() string {
	return r[FieldPackage]
}

func (r Record) Version() string {
	return r[FieldVersion]
}

func (r Record) String() string {
	return r.Package() + "=" + r.Version()
}
