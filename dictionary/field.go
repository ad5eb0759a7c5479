package dictionary

// FieldValue is one enumerated value of a field. Generated accessors return
// pointers to package-level values; callers must not modify them.
type FieldValue struct {
	Tag   uint32
	Name  string
	Value string
}

// VersionField describes a field of one protocol version.
type VersionField interface {
	Tag() uint32
	Name() string
	DataType() string
	Description() string
	Pedigree() Pedigree
	// Values returns the enumerated values in dictionary order, or an empty
	// slice when the field has no code set.
	Values() []*FieldValue
	// IsValid reports whether the field is a real field rather than the
	// InvalidField placeholder.
	IsValid() bool
}

// InvalidField is the placeholder returned for tags with no defined field.
// It occupies position 0 of every FieldCollection.
type InvalidField struct{}

var _ VersionField = InvalidField{}

func (InvalidField) Tag() uint32           { return 0 }
func (InvalidField) Name() string          { return "" }
func (InvalidField) DataType() string      { return "" }
func (InvalidField) Description() string   { return "" }
func (InvalidField) Pedigree() Pedigree    { return Pedigree{} }
func (InvalidField) Values() []*FieldValue { return nil }
func (InvalidField) IsValid() bool         { return false }

// ValueOf returns the enumerated value of field whose wire value is value.
func ValueOf(field VersionField, value string) (*FieldValue, bool) {
	for _, v := range field.Values() {
		if v.Value == value {
			return v, true
		}
	}

	return nil, false
}
