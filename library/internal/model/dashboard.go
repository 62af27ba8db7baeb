package model

type BorrowedBook struct {
	BorrowRecord
	Status       Status `json:"status"`
	DaysUntilDue int    `json:"daysUntilDue"`
	CanRenew     bool   `json:"canRenew"`
}

type BorrowPartition struct {
	Active   []BorrowedBook `json:"active"`
	Overdue  []BorrowedBook `json:"overdue"`
	Returned []BorrowedBook `json:"returned"`
}

type BorrowCounts struct {
	Active   int `json:"active"`
	Overdue  int `json:"overdue"`
	Returned int `json:"returned"`
}

type Dashboard struct {
	Member    Member          `json:"member"`
	Borrowed  BorrowPartition `json:"borrowed"`
	Counts    BorrowCounts    `json:"counts"`
	Favorites []Favorite      `json:"favorites"`
	Stats     ReadingStats    `json:"readingStats"`
}
