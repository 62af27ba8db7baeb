package model

import (
	"time"
)

type Book struct {
	ID          string  `json:"id" db:"id"`
	Title       string  `json:"title" db:"title"`
	Author      string  `json:"author" db:"author"`
	Genre       string  `json:"genre" db:"genre"`
	Year        int     `json:"year" db:"year"`
	Rating      float64 `json:"rating" db:"rating"`
	Available   int     `json:"available" db:"available"`
	Total       int     `json:"total" db:"total"`
	Description string  `json:"description" db:"description"`
	ISBN        string  `json:"isbn" db:"isbn"`
	Publisher   string  `json:"publisher,omitempty" db:"publisher"`
	Pages       int     `json:"pages,omitempty" db:"pages"`
	Language    string  `json:"language,omitempty" db:"language"`
	Summary     string  `json:"summary,omitempty" db:"summary"`
}

func (b Book) IsAvailable() bool {
	return b.Available > 0
}

type Review struct {
	ID      string    `json:"id" db:"id"`
	BookID  string    `json:"-" db:"book_id"`
	User    string    `json:"user" db:"user_name"`
	Rating  int       `json:"rating" db:"rating"`
	Comment string    `json:"comment" db:"comment"`
	Date    time.Time `json:"date" db:"created_at"`
}

type ReviewRequest struct {
	User    string `json:"user" validate:"required,max=100"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required,max=2000"`
}

// ReviewSummary aggregates the star distribution of a book's reviews.
type ReviewSummary struct {
	FiveStars  int     `json:"fiveStars"`
	FourStars  int     `json:"fourStars"`
	ThreeStars int     `json:"threeStars"`
	TwoStars   int     `json:"twoStars"`
	OneStar    int     `json:"oneStar"`
	Average    float64 `json:"average"`
	Total      int     `json:"total"`
}

type BookDetails struct {
	Book
	Reviews []Review      `json:"reviews"`
	Summary ReviewSummary `json:"reviewSummary"`
}

type Member struct {
	ID             string    `json:"username" db:"username"`
	Name           string    `json:"name" db:"name"`
	Email          string    `json:"email" db:"email"`
	MembershipType string    `json:"membershipType" db:"membership_type"`
	JoinDate       time.Time `json:"joinDate" db:"join_date"`
	MemberID       string    `json:"memberId" db:"member_id"`
}

type ReadingStats struct {
	BooksRead      int     `json:"booksRead" db:"books_read"`
	BooksThisMonth int     `json:"booksThisMonth" db:"books_this_month"`
	CurrentStreak  int     `json:"currentStreak" db:"current_streak"`
	FavoriteGenre  string  `json:"favoriteGenre" db:"favorite_genre"`
	TotalPages     int     `json:"totalPages" db:"total_pages"`
	AvgRating      float64 `json:"avgRating" db:"avg_rating"`
}

type Favorite struct {
	MemberID string  `json:"-" db:"username"`
	BookID   string  `json:"bookId" db:"book_id"`
	Title    string  `json:"title" db:"title"`
	Author   string  `json:"author" db:"author"`
	Genre    string  `json:"genre" db:"genre"`
	Rating   float64 `json:"rating" db:"rating"`
}
