// Package catalog holds the static marketplace dataset and the pure
// lookup/filter layer over it. Nothing here mutates after construction.
package catalog

// Catalog is an immutable snapshot of the marketplace dataset.
type Catalog struct {
	assets     []Asset
	projects   []Project
	categories []Category
	balances   []Balance

	assetByID    map[string]Asset
	projectByID  map[string]Project
	categoryByID map[string]Category
	declOrder    map[string]int // asset ID -> position in declaration order
}

// Default returns the compiled-in marketplace dataset.
func Default() *Catalog {
	return New(defaultAssets, defaultProjects, defaultCategories, defaultBalances)
}

// New builds a catalog from explicit slices. The slices are copied; callers
// keep ownership of their inputs.
func New(assets []Asset, projects []Project, categories []Category, balances []Balance) *Catalog {
	c := &Catalog{
		assets:       append([]Asset(nil), assets...),
		projects:     append([]Project(nil), projects...),
		categories:   append([]Category(nil), categories...),
		balances:     append([]Balance(nil), balances...),
		assetByID:    make(map[string]Asset, len(assets)),
		projectByID:  make(map[string]Project, len(projects)),
		categoryByID: make(map[string]Category, len(categories)),
		declOrder:    make(map[string]int, len(assets)),
	}
	for i, a := range c.assets {
		c.assetByID[a.ID] = a
		c.declOrder[a.ID] = i
	}
	for _, p := range c.projects {
		c.projectByID[p.ID] = p
	}
	for _, cat := range c.categories {
		c.categoryByID[cat.ID] = cat
	}
	return c
}

// Assets returns all assets in declaration order.
func (c *Catalog) Assets() []Asset {
	return append([]Asset(nil), c.assets...)
}

// Projects returns all projects in declaration order.
func (c *Catalog) Projects() []Project {
	return append([]Project(nil), c.projects...)
}

// Categories returns all browse categories in declaration order.
func (c *Catalog) Categories() []Category {
	return append([]Category(nil), c.categories...)
}

// Balances returns the demo portfolio balances.
func (c *Catalog) Balances() []Balance {
	return append([]Balance(nil), c.balances...)
}

// AssetByID looks up an asset. Unknown IDs report ok=false, never an error.
func (c *Catalog) AssetByID(id string) (Asset, bool) {
	a, ok := c.assetByID[id]
	return a, ok
}

// ProjectByID looks up a project.
func (c *Catalog) ProjectByID(id string) (Project, bool) {
	p, ok := c.projectByID[id]
	return p, ok
}

// CategoryByID looks up a browse category.
func (c *Catalog) CategoryByID(id string) (Category, bool) {
	cat, ok := c.categoryByID[id]
	return cat, ok
}

// AssetsByCategory returns the assets declaring the given category ID, in
// declaration order. The category's AssetCount field plays no part here.
// Unknown IDs yield an empty slice.
func (c *Catalog) AssetsByCategory(categoryID string) []Asset {
	var out []Asset
	for _, a := range c.assets {
		if a.CategoryID == categoryID {
			out = append(out, a)
		}
	}
	return out
}

// AssetsByProject returns the assets issued by the given project, in
// declaration order.
func (c *Catalog) AssetsByProject(projectID string) []Asset {
	var out []Asset
	for _, a := range c.assets {
		if a.ProjectID == projectID {
			out = append(out, a)
		}
	}
	return out
}

// LikedAssets maps a like-set onto assets in declaration order, which is
// the display order for the wishlist. IDs not present in the catalog are
// skipped.
func (c *Catalog) LikedAssets(liked func(id string) bool) []Asset {
	var out []Asset
	for _, a := range c.assets {
		if liked(a.ID) {
			out = append(out, a)
		}
	}
	return out
}
