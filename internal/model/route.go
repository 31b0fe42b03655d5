package model

import (
	"errors"
	"net/url"
	"strings"
)

// ScreenKind names one of the navigable screens.
type ScreenKind string

const (
	ScreenFilms     ScreenKind = "films"
	ScreenFilm      ScreenKind = "film"
	ScreenCharacter ScreenKind = "character"
)

// ErrInvalidRoute is returned by ParseRoute for paths that do not name a screen.
var ErrInvalidRoute = errors.New("invalid route")

// Route identifies a screen and, for detail screens, the subject it shows.
type Route struct {
	Screen ScreenKind `json:"screen"`
	ID     string     `json:"id,omitempty"`
}

// FilmsRoute is the root of the navigation stack.
func FilmsRoute() Route { return Route{Screen: ScreenFilms} }

// FilmRoute points at the detail screen of a film.
func FilmRoute(id string) Route { return Route{Screen: ScreenFilm, ID: id} }

// CharacterRoute points at the detail screen of a character.
func CharacterRoute(id string) Route { return Route{Screen: ScreenCharacter, ID: id} }

// Path renders the route as the HTTP path serving it.
// Detail ids are path-escaped since relay ids may contain '/' and '='.
func (r Route) Path() string {
	switch r.Screen {
	case ScreenFilms:
		return "/films"
	case ScreenFilm:
		return "/films/" + url.PathEscape(r.ID)
	case ScreenCharacter:
		return "/characters/" + url.PathEscape(r.ID)
	default:
		return ""
	}
}

func (r Route) String() string { return r.Path() }

// ParseRoute is the inverse of Route.Path.
func ParseRoute(path string) (Route, error) {
	trimmed := strings.Trim(path, "/")
	head, rest, hasRest := strings.Cut(trimmed, "/")

	switch {
	case head == "films" && !hasRest:
		return FilmsRoute(), nil
	case head == "films" && rest != "":
		id, err := url.PathUnescape(rest)
		if err != nil || id == "" {
			return Route{}, ErrInvalidRoute
		}
		return FilmRoute(id), nil
	case head == "characters" && rest != "":
		id, err := url.PathUnescape(rest)
		if err != nil || id == "" {
			return Route{}, ErrInvalidRoute
		}
		return CharacterRoute(id), nil
	default:
		return Route{}, ErrInvalidRoute
	}
}
