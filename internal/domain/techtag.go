package domain

// TechTagCategory is the top tier of the technology tag taxonomy.
type TechTagCategory struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sortOrder"`
}

// TechTagSubCategory groups tags under a category.
type TechTagSubCategory struct {
	ID         string `json:"id"`
	CategoryID string `json:"categoryId"`
	Name       string `json:"name"`
	SortOrder  int    `json:"sortOrder"`
}

// TechTag is a skill/technology label referenced from Member.TechTagIDs.
type TechTag struct {
	ID            string `json:"id"`
	SubCategoryID string `json:"subCategoryId"`
	Name          string `json:"name"`
	SortOrder     int    `json:"sortOrder"`
}
