package models

// Category agrupa productos bajo un nombre.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
}

func (c *Category) TableName() string {
	return "categories"
}
