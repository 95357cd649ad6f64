package types

type CatalogType string

const (
	CatalogFeatured CatalogType = "featured"
	CatalogRecent   CatalogType = "recent"
	CatalogAll      CatalogType = "all"
	CatalogDynamic  CatalogType = "dynamic"
)

func (x CatalogType) Valid() bool {
	switch x {
	case CatalogFeatured, CatalogRecent, CatalogAll, CatalogDynamic:
		return true
	}
	return false
}

type SortKey string

const (
	SortByStars    SortKey = "stars"
	SortByUpdated  SortKey = "updated"
	SortByCreated  SortKey = "created"
	SortByName     SortKey = "name"
	SortByPriority SortKey = "priority"
)

func (x SortKey) Valid() bool {
	switch x {
	case SortByStars, SortByUpdated, SortByCreated, SortByName, SortByPriority:
		return true
	}
	return false
}

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

type ProjectSource string

const (
	SourceStatic ProjectSource = "static"
	SourceGitHub ProjectSource = "github"
)
