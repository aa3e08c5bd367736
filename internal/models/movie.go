package models

// Movie is the stable projection of an upstream catalog item.
// Field names follow the upstream schema so existing clients keep working,
// but the set of fields is fixed here to insulate callers from upstream drift.
// swagger:model Movie
type Movie struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int64   `json:"vote_count"`
	ReleaseDate  string  `json:"release_date"`
}

// Genre is a movie genre as returned by the details endpoint.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProductionCompany is a producing company as returned by the details endpoint.
type ProductionCompany struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	LogoPath string `json:"logo_path"`
}

// MovieDetails extends Movie with the fields of the single-item endpoint.
// Absent upstream fields default to zero values.
// swagger:model MovieDetails
type MovieDetails struct {
	Movie
	Genres              []Genre             `json:"genres"`
	Runtime             int64               `json:"runtime"`
	Tagline             string              `json:"tagline"`
	Budget              int64               `json:"budget"`
	Revenue             int64               `json:"revenue"`
	Popularity          float64             `json:"popularity"`
	ProductionCompanies []ProductionCompany `json:"production_companies"`
}

// PaginatedMovies is a page of movies with upstream pagination metadata.
// swagger:model PaginatedMovies
type PaginatedMovies struct {
	Results      []Movie `json:"results"`
	Page         int     `json:"page"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int64   `json:"total_results"`
}
