package models

import "strconv"

type Medication struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Catalog is the ordered set of medications offered by the shopping list.
type Catalog []Medication

// NewCatalog assigns sequential ids ("1", "2", ...) to names in order.
// Blank names are skipped.
func NewCatalog(names []string) Catalog {
	catalog := make(Catalog, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		catalog = append(catalog, Medication{
			ID:   strconv.Itoa(len(catalog) + 1),
			Name: name,
		})
	}
	return catalog
}

func (c Catalog) Find(id string) (Medication, bool) {
	for _, m := range c {
		if m.ID == id {
			return m, true
		}
	}
	return Medication{}, false
}
