package database

import "github.com/avelok/stint/internal/models"

var defaultCategories = []models.Category{
	{Name: "Study", Color: "81"},
	{Name: "Work", Color: "205"},
	{Name: "Reading", Color: "214"},
	{Name: "Rest", Color: "150"},
}

var defaultCompanions = []models.Companion{
	{Name: "Cat", Icon: "🐈"},
	{Name: "Fox", Icon: "🦊"},
	{Name: "Owl", Icon: "🦉"},
}

func (d *Database) seedCatalogs() error {
	for _, c := range defaultCategories {
		if _, err := d.DB.Exec("INSERT OR IGNORE INTO categories (name, color) VALUES (?, ?)", c.Name, c.Color); err != nil {
			return wrapCatalogErr("seed", "category", err)
		}
	}
	for _, c := range defaultCompanions {
		if _, err := d.DB.Exec("INSERT OR IGNORE INTO companions (name, icon) VALUES (?, ?)", c.Name, c.Icon); err != nil {
			return wrapCatalogErr("seed", "companion", err)
		}
	}
	return nil
}

// GetCategories lists all categories, defaults first.
func (d *Database) GetCategories() ([]models.Category, error) {
	rows, err := d.DB.Query("SELECT id, name, color FROM categories ORDER BY id")
	if err != nil {
		return nil, wrapCatalogErr("list", "category", err)
	}
	defer rows.Close()
	var out []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Color); err != nil {
			return nil, wrapCatalogErr("scan", "category", err)
		}
		out = append(out, c)
	}
	return out, wrapCatalogErr("list", "category", rows.Err())
}

// GetCompanions lists all companions, defaults first.
func (d *Database) GetCompanions() ([]models.Companion, error) {
	rows, err := d.DB.Query("SELECT id, name, icon FROM companions ORDER BY id")
	if err != nil {
		return nil, wrapCatalogErr("list", "companion", err)
	}
	defer rows.Close()
	var out []models.Companion
	for rows.Next() {
		var c models.Companion
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon); err != nil {
			return nil, wrapCatalogErr("scan", "companion", err)
		}
		out = append(out, c)
	}
	return out, wrapCatalogErr("list", "companion", rows.Err())
}

// AddCategory creates a custom category.
func (d *Database) AddCategory(name, color string) (int64, error) {
	res, err := d.DB.Exec("INSERT INTO categories (name, color) VALUES (?, ?)", name, color)
	if err != nil {
		return 0, wrapCatalogErr("add", "category", err)
	}
	id, err := res.LastInsertId()
	return id, wrapCatalogErr("add", "category", err)
}
