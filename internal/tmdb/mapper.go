package tmdb

import (
	"strings"

	"github.com/mmcdole/marquee/internal/domain"
)

// MapMovie converts a listing DTO to a domain Movie
func MapMovie(r MovieResult) domain.Movie {
	return domain.Movie{
		ID:          r.ID,
		Title:       strings.TrimSpace(r.Title),
		PosterPath:  deref(r.PosterPath),
		VoteAverage: derefFloat(r.VoteAverage),
		ReleaseDate: deref(r.ReleaseDate),
		GenreIDs:    r.GenreIDs,
		Overview:    strings.TrimSpace(deref(r.Overview)),
		Popularity:  r.Popularity,
	}
}

// MapMovies converts listing DTOs, dropping entries without an id
func MapMovies(results []MovieResult) []domain.Movie {
	movies := make([]domain.Movie, 0, len(results))
	for _, r := range results {
		if r.ID == 0 {
			continue
		}
		movies = append(movies, MapMovie(r))
	}
	return movies
}

// MapMovieDetail converts the detail payload
func MapMovieDetail(r MovieDetailResult) *domain.MovieDetail {
	d := &domain.MovieDetail{
		Movie:    MapMovie(r.MovieResult),
		Tagline:  strings.TrimSpace(deref(r.Tagline)),
		Homepage: deref(r.Homepage),
		Status:   r.Status,
	}
	if r.Runtime != nil {
		d.Runtime = *r.Runtime
	}

	d.Genres = make([]domain.Genre, 0, len(r.Genres))
	for _, g := range r.Genres {
		d.Genres = append(d.Genres, domain.Genre{ID: g.ID, Name: g.Name})
	}
	// Detail payloads carry genres, not genre_ids; keep both populated
	if len(d.GenreIDs) == 0 && len(d.Genres) > 0 {
		d.GenreIDs = make([]int, len(d.Genres))
		for i, g := range d.Genres {
			d.GenreIDs[i] = g.ID
		}
	}
	return d
}

// MapPeople converts person search DTOs, dropping entries without an id
func MapPeople(results []PersonResult) []domain.Person {
	people := make([]domain.Person, 0, len(results))
	for _, r := range results {
		if r.ID == 0 {
			continue
		}
		people = append(people, domain.Person{
			ID:                 r.ID,
			Name:               strings.TrimSpace(r.Name),
			ProfilePath:        deref(r.ProfilePath),
			KnownForDepartment: r.KnownForDepartment,
			Popularity:         r.Popularity,
		})
	}
	return people
}

// MapPersonDetail converts the person detail payload
func MapPersonDetail(r PersonDetailResult) *domain.PersonDetail {
	return &domain.PersonDetail{
		ID:           r.ID,
		Name:         strings.TrimSpace(r.Name),
		Birthday:     deref(r.Birthday),
		PlaceOfBirth: deref(r.PlaceOfBirth),
		Biography:    strings.TrimSpace(deref(r.Biography)),
		ProfilePath:  deref(r.ProfilePath),
	}
}

// MapCast converts credits DTOs
func MapCast(results []CastResult) []domain.CastMember {
	cast := make([]domain.CastMember, 0, len(results))
	for _, r := range results {
		if r.ID == 0 {
			continue
		}
		cast = append(cast, domain.CastMember{
			ID:          r.ID,
			Name:        r.Name,
			Character:   r.Character,
			ProfilePath: deref(r.ProfilePath),
			Order:       r.Order,
		})
	}
	return cast
}

// MapReviews converts review DTOs
func MapReviews(results []ReviewResult) []domain.Review {
	reviews := make([]domain.Review, 0, len(results))
	for _, r := range results {
		reviews = append(reviews, domain.Review{
			ID:      r.ID,
			Author:  r.Author,
			Content: strings.TrimSpace(r.Content),
			URL:     r.URL,
		})
	}
	return reviews
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
