package entity

type Notification struct {
	Base
	Title   string `db:"title"`
	Message string `db:"message"`
	IsNew   bool   `db:"is_new"`
}
