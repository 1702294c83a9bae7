package models

import "time"

// Post представляет запись блога
type Post struct {
	ID       int64     `json:"id"`        // целочисленный идентификатор
	AuthorID int64     `json:"author_id"` // владелец записи, назначается при создании и не меняется
	Title    string    `json:"title"`     // заголовок
	Body     string    `json:"body"`      // текст записи
	Created  time.Time `json:"created"`   // время создания
}

// PostWithAuthor объединяет запись с username автора для списков
type PostWithAuthor struct {
	Post
	AuthorName string `json:"author_name"` // username автора (JOIN по users.id)
}
