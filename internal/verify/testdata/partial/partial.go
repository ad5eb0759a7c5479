package partial

import "fixdict-generator/dictionary"

type Account struct{}

var _ dictionary.VersionField = Account{}

func (Account) Tag() uint32                      { return 1 }
func (Account) Name() string                     { return "Account" }
func (Account) DataType() string                 { return "String" }
func (Account) Description() string              { return "" }
func (Account) Pedigree() dictionary.Pedigree    { return dictionary.Pedigree{} }
func (Account) Values() []*dictionary.FieldValue { return nil }
func (Account) IsValid() bool                    { return true }
