package repository

import (
	"time"

	"github.com/Astemirdum/librarypro/library/internal/model"
)

type Seed struct {
	Books     []model.Book
	Reviews   []model.Review
	Members   []model.Member
	Stats     map[string]model.ReadingStats
	Records   []model.BorrowRecord
	Favorites []model.Favorite
}

const DemoMember = "john.doe"

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

// SampleSeed returns the demo catalog. Loan dates are placed around now so
// that the demo member has one active, one overdue and one returned loan.
func SampleSeed(now time.Time) Seed {
	today := now.UTC().Truncate(24 * time.Hour)
	day := func(n int) time.Time { return today.AddDate(0, 0, n) }
	returned := day(-7)

	return Seed{
		Books:   SampleBooks(),
		Reviews: sampleReviews(),
		Members: []model.Member{
			{
				ID:             DemoMember,
				Name:           "John Doe",
				Email:          "john.doe@example.com",
				MembershipType: "Premium",
				JoinDate:       date("2023-01-15"),
				MemberID:       "LIB-2023-0156",
			},
		},
		Stats: map[string]model.ReadingStats{
			DemoMember: {
				BooksRead:      24,
				BooksThisMonth: 3,
				CurrentStreak:  12,
				FavoriteGenre:  "Classic Literature",
				TotalPages:     6240,
				AvgRating:      4.3,
			},
		},
		Records: []model.BorrowRecord{
			{
				ID:           "6f1c2a8e-0b51-4d8a-9a4e-6c2b1f0e9a01",
				MemberID:     DemoMember,
				BookID:       "1",
				BorrowDate:   day(-11),
				DueDate:      day(20),
				RenewalsLeft: 2,
			},
			{
				ID:           "6f1c2a8e-0b51-4d8a-9a4e-6c2b1f0e9a02",
				MemberID:     DemoMember,
				BookID:       "3",
				BorrowDate:   day(-16),
				DueDate:      day(-1),
				RenewalsLeft: 0,
			},
			{
				ID:           "6f1c2a8e-0b51-4d8a-9a4e-6c2b1f0e9a03",
				MemberID:     DemoMember,
				BookID:       "4",
				BorrowDate:   day(-25),
				DueDate:      day(-6),
				ReturnedAt:   &returned,
				RenewalsLeft: 0,
			},
		},
		Favorites: []model.Favorite{
			{MemberID: DemoMember, BookID: "1"},
			{MemberID: DemoMember, BookID: "2"},
		},
	}
}

func SampleBooks() []model.Book {
	return []model.Book{
		{
			ID:          "1",
			Title:       "The Great Gatsby",
			Author:      "F. Scott Fitzgerald",
			Genre:       "Classic Literature",
			Year:        1925,
			Rating:      4.2,
			Available:   3,
			Total:       5,
			Description: "A classic American novel set in the Jazz Age, exploring themes of wealth, love, idealism, and moral decay.",
			ISBN:        "978-0-7432-7356-5",
			Publisher:   "Scribner",
			Pages:       180,
			Language:    "English",
			Summary:     "The Great Gatsby is a 1925 novel by American writer F. Scott Fitzgerald. Set in the Jazz Age on prosperous Long Island and in New York City during the summer of 1922, the novel follows the life and times of millionaire Jay Gatsby and his neighbor Nick Carraway, who recounts Gatsby's obsession and yearning for his lost love Daisy Buchanan.",
		},
		{
			ID:          "2",
			Title:       "To Kill a Mockingbird",
			Author:      "Harper Lee",
			Genre:       "Classic Literature",
			Year:        1960,
			Rating:      4.5,
			Available:   2,
			Total:       4,
			Description: "A gripping tale of racial injustice and childhood innocence in the American South.",
			ISBN:        "978-0-06-112008-4",
			Publisher:   "J.B. Lippincott & Co.",
			Pages:       281,
			Language:    "English",
			Summary:     "To Kill a Mockingbird is a novel by Harper Lee published in 1960. It was immediately successful, winning the Pulitzer Prize, and has become a classic of modern American literature.",
		},
		{
			ID:          "3",
			Title:       "1984",
			Author:      "George Orwell",
			Genre:       "Science Fiction",
			Year:        1949,
			Rating:      4.4,
			Available:   1,
			Total:       3,
			Description: "A dystopian social science fiction novel about totalitarian control and surveillance.",
			ISBN:        "978-0-452-28423-4",
			Publisher:   "Secker & Warburg",
			Pages:       328,
			Language:    "English",
			Summary:     "1984 is a dystopian social science fiction novel and cautionary tale by English writer George Orwell. It was published on 8 June 1949 by Secker & Warburg as Orwell's ninth and final book completed in his lifetime.",
		},
		{
			ID:          "4",
			Title:       "Pride and Prejudice",
			Author:      "Jane Austen",
			Genre:       "Romance",
			Year:        1813,
			Rating:      4.3,
			Available:   4,
			Total:       6,
			Description: "A romantic novel exploring the complexities of love, marriage, and social class in Georgian England.",
			ISBN:        "978-0-14-143951-8",
			Publisher:   "T. Egerton",
			Pages:       432,
			Language:    "English",
			Summary:     "Pride and Prejudice is an 1813 novel of manners by Jane Austen. The novel follows the character development of Elizabeth Bennet, who learns about the repercussions of hasty judgments and comes to appreciate the difference between superficial goodness and actual goodness.",
		},
	}
}

func sampleReviews() []model.Review {
	return []model.Review{
		{ID: "1", BookID: "1", User: "Sarah Johnson", Rating: 5, Date: date("2024-01-15"),
			Comment: "A timeless masterpiece that captures the essence of the American Dream and its complexities."},
		{ID: "2", BookID: "1", User: "Michael Chen", Rating: 4, Date: date("2024-01-10"),
			Comment: "Beautiful prose and compelling characters. A must-read for anyone interested in American literature."},
		{ID: "3", BookID: "2", User: "Emily Rodriguez", Rating: 5, Date: date("2024-01-20"),
			Comment: "A powerful story that addresses important social issues with grace and humanity."},
		{ID: "4", BookID: "3", User: "David Thompson", Rating: 4, Date: date("2024-01-18"),
			Comment: "Chilling and prophetic. More relevant today than ever before."},
		{ID: "5", BookID: "4", User: "Jessica Wang", Rating: 5, Date: date("2024-01-22"),
			Comment: "A delightful romance with wit, charm, and unforgettable characters."},
	}
}
