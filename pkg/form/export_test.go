package form

// AliasTable and BuildIndex expose the index builder to black-box tests.
type AliasTable = aliasTable

func NewAliasTable(c Category, aliases ...string) AliasTable {
	return aliasTable{category: c, aliases: aliases}
}

var BuildIndex = buildIndex
