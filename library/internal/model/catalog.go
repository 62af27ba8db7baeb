package model

type SortKey string

const (
	SortByTitle        SortKey = "title"
	SortByAuthor       SortKey = "author"
	SortByYear         SortKey = "year"
	SortByRating       SortKey = "rating"
	SortByAvailability SortKey = "availability"
)

const AllGenres = "All Genres"

var Genres = []string{
	AllGenres,
	"Classic Literature",
	"Science Fiction",
	"Romance",
	"Mystery",
	"Biography",
	"History",
}

type SortOption struct {
	Value SortKey `json:"value"`
	Label string  `json:"label"`
}

var SortOptions = []SortOption{
	{Value: SortByTitle, Label: "Title A-Z"},
	{Value: SortByAuthor, Label: "Author A-Z"},
	{Value: SortByYear, Label: "Publication Year"},
	{Value: SortByRating, Label: "Rating"},
	{Value: SortByAvailability, Label: "Availability"},
}

type CatalogQuery struct {
	Search string  `query:"search" validate:"max=200"`
	Genre  string  `query:"genre" validate:"max=100"`
	Sort   SortKey `query:"sort" validate:"omitempty,oneof=title author year rating availability"`
}

type CatalogOptions struct {
	Genres      []string     `json:"genres"`
	SortOptions []SortOption `json:"sortOptions"`
}

type ListBooks struct {
	TotalElements int    `json:"totalElements"`
	Items         []Book `json:"items"`
}

type SiteStat struct {
	Number string `json:"number"`
	Label  string `json:"label"`
}

var SiteStats = []SiteStat{
	{Number: "50,000+", Label: "Books Available"},
	{Number: "15,000+", Label: "Active Members"},
	{Number: "500+", Label: "New Arrivals Monthly"},
	{Number: "24/7", Label: "Digital Access"},
}

type Home struct {
	Featured        []Book     `json:"featured"`
	Titles          int        `json:"titles"`
	CopiesTotal     int        `json:"copiesTotal"`
	CopiesAvailable int        `json:"copiesAvailable"`
	Stats           []SiteStat `json:"stats"`
}
