package entities

import "github.com/mrlokans/lending-library/internal/money"

// Author is created the first time a book names it and is never removed.
type Author struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100" json:"name"`
}

func (Author) TableName() string {
	return "authors"
}

type Genre struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50" json:"name"`
}

func (Genre) TableName() string {
	return "genres"
}

type Book struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	Title     string      `gorm:"size:256" json:"title"`
	AuthorID  uint        `json:"author_id"`
	Author    Author      `gorm:"foreignKey:AuthorID" json:"author"`
	GenreID   uint        `json:"genre_id"`
	Genre     Genre       `gorm:"foreignKey:GenreID" json:"genre"`
	RentPrice money.Money `gorm:"type:decimal(10,2)" json:"rent_price"`
}

func (Book) TableName() string {
	return "books"
}
