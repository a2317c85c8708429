package domain

// Index groups a storefront's flat collections by their foreign keys. It is
// built once per fetch and never mutated afterwards.
type Index struct {
	SizesByItem     map[int][]Size
	ItemsByCategory map[int][]MenuItem
	AreasByBranch   map[int][]DeliveryArea
	Items           map[int]MenuItem
	Extras          map[int]Extra
	Branches        map[int]Branch
	Areas           map[int]DeliveryArea
}

func NewIndex(s *Storefront) *Index {
	idx := &Index{
		SizesByItem:     make(map[int][]Size),
		ItemsByCategory: make(map[int][]MenuItem),
		AreasByBranch:   make(map[int][]DeliveryArea),
		Items:           make(map[int]MenuItem, len(s.Items)),
		Extras:          make(map[int]Extra, len(s.Extras)),
		Branches:        make(map[int]Branch, len(s.Branches)),
		Areas:           make(map[int]DeliveryArea, len(s.DeliveryAreas)),
	}

	for _, item := range s.Items {
		idx.Items[item.ID] = item
		if item.CategoryID != nil {
			idx.ItemsByCategory[*item.CategoryID] = append(idx.ItemsByCategory[*item.CategoryID], item)
		}
	}
	for _, size := range s.Sizes {
		idx.SizesByItem[size.MenuItemID] = append(idx.SizesByItem[size.MenuItemID], size)
	}
	for _, extra := range s.Extras {
		idx.Extras[extra.ID] = extra
	}
	for _, branch := range s.Branches {
		idx.Branches[branch.ID] = branch
	}
	for _, area := range s.DeliveryAreas {
		idx.Areas[area.ID] = area
		idx.AreasByBranch[area.BranchID] = append(idx.AreasByBranch[area.BranchID], area)
	}
	return idx
}

// Sections lays the items out under their categories in category display
// order, followed by items that have no known category.
func (idx *Index) Sections(s *Storefront) []MenuSection {
	known := make(map[int]bool, len(s.Categories))
	sections := make([]MenuSection, 0, len(s.Categories)+1)

	for i := range s.Categories {
		category := s.Categories[i]
		known[category.ID] = true
		items := idx.ItemsByCategory[category.ID]
		if len(items) == 0 {
			continue
		}
		sections = append(sections, MenuSection{Category: &category, Items: idx.entries(items)})
	}

	var loose []MenuItem
	for _, item := range s.Items {
		if item.CategoryID == nil || !known[*item.CategoryID] {
			loose = append(loose, item)
		}
	}
	if len(loose) > 0 {
		sections = append(sections, MenuSection{Items: idx.entries(loose)})
	}
	return sections
}

func (idx *Index) entries(items []MenuItem) []MenuEntry {
	entries := make([]MenuEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, MenuEntry{MenuItem: item, Sizes: idx.SizesByItem[item.ID]})
	}
	return entries
}
