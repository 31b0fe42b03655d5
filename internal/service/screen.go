package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Khan/genqlient/graphql"
	"go.uber.org/zap"

	"jediarchives/internal/model"
	"jediarchives/internal/swapi"
)

var (
	ErrInvalidID = errors.New("invalid id")
	ErrUpstream  = errors.New("upstream request failed")
)

// notAvailable is shown for attributes the upstream left null.
const notAvailable = "NA"

// ScreenService loads the data behind each screen and maps it into view models.
type ScreenService interface {
	// Films returns the list of all films. Each row navigates to FilmDetail.
	Films(ctx context.Context) (*model.Screen, error)

	// FilmDetail returns a film's attributes and up to ten of its characters.
	FilmDetail(ctx context.Context, id string) (*model.Screen, error)

	// CharacterDetail returns a character's attributes and up to ten films they appear in.
	CharacterDetail(ctx context.Context, id string) (*model.Screen, error)

	// Render dispatches to the screen named by route.
	Render(ctx context.Context, route model.Route) (*model.Screen, error)
}

type screenService struct {
	client graphql.Client
	logger *zap.Logger
}

// NewScreenService constructs a ScreenService issuing queries through client.
func NewScreenService(client graphql.Client, logger *zap.Logger) ScreenService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &screenService{client: client, logger: logger}
}

func (s *screenService) Render(ctx context.Context, route model.Route) (*model.Screen, error) {
	switch route.Screen {
	case model.ScreenFilms:
		return s.Films(ctx)
	case model.ScreenFilm:
		return s.FilmDetail(ctx, route.ID)
	case model.ScreenCharacter:
		return s.CharacterDetail(ctx, route.ID)
	default:
		return nil, model.ErrInvalidRoute
	}
}

func (s *screenService) Films(ctx context.Context) (*model.Screen, error) {
	route := model.FilmsRoute()
	data, err := swapi.AllFilms(ctx, s.client)

	var films []*swapi.AllFilmsAllFilmsFilmsConnectionFilmsFilm
	if data != nil && data.AllFilms != nil {
		films = data.AllFilms.Films
	}
	if films == nil && err != nil {
		return nil, s.loadFailed(route, err)
	}
	if err != nil {
		s.partial(route, err)
	}

	screen := &model.Screen{Route: route, Title: "Films", Sections: []model.Section{}}
	if films == nil {
		return screen, nil
	}

	refs := make([]model.RefItem, 0, len(films))
	for _, f := range films {
		if f == nil {
			continue
		}
		refs = append(refs, filmRef(&f.ListFilmFragment))
	}
	screen.Sections = append(screen.Sections, model.ReferenceSection("Films", refs))
	return screen, nil
}

func (s *screenService) FilmDetail(ctx context.Context, id string) (*model.Screen, error) {
	if err := swapi.CheckID(id, swapi.TypeFilms); err != nil {
		return nil, ErrInvalidID
	}
	route := model.FilmRoute(id)

	data, err := swapi.FilmDetail(ctx, s.client, &id)
	var film *swapi.FilmDetailFilm
	if data != nil {
		film = data.Film
	}
	if film == nil {
		if err != nil {
			return nil, s.loadFailed(route, err)
		}
		return nil, ErrNotFound
	}
	if err != nil {
		s.partial(route, err)
	}

	episode := 0
	if film.EpisodeID != nil {
		episode = *film.EpisodeID
	}

	screen := &model.Screen{
		Route: route,
		Title: valueOr(film.Title, ""),
		Sections: []model.Section{
			model.InfoSection("Info", []model.InfoItem{
				{Label: "Title", Value: valueOr(film.Title, notAvailable)},
				{Label: "Episode", Value: strconv.Itoa(episode)},
				{Label: "Released", Value: valueOr(film.ReleaseDate, notAvailable)},
				{Label: "Director", Value: valueOr(film.Director, notAvailable)},
			}),
		},
	}

	var refs []model.RefItem
	if conn := film.CharacterConnection; conn != nil {
		for _, c := range conn.Characters {
			if c == nil {
				continue
			}
			refs = append(refs, model.NewRefItem(c.Id, valueOr(c.Name, ""), "", model.CharacterRoute(c.Id)))
		}
	}
	if len(refs) > 0 {
		screen.Sections = append(screen.Sections, model.ReferenceSection("Characters", refs))
	}
	return screen, nil
}

func (s *screenService) CharacterDetail(ctx context.Context, id string) (*model.Screen, error) {
	if err := swapi.CheckID(id, swapi.TypePeople); err != nil {
		return nil, ErrInvalidID
	}
	route := model.CharacterRoute(id)

	data, err := swapi.CharacterDetail(ctx, s.client, &id)
	var person *swapi.CharacterDetailPerson
	if data != nil {
		person = data.Person
	}
	if person == nil {
		if err != nil {
			return nil, s.loadFailed(route, err)
		}
		return nil, ErrNotFound
	}
	if err != nil {
		s.partial(route, err)
	}

	var homeworld *string
	if person.Homeworld != nil {
		homeworld = person.Homeworld.Name
	}

	screen := &model.Screen{
		Route: route,
		Title: valueOr(person.Name, ""),
		Sections: []model.Section{
			model.InfoSection("Info", []model.InfoItem{
				{Label: "Name", Value: valueOr(person.Name, notAvailable)},
				{Label: "Birth Year", Value: valueOr(person.BirthYear, notAvailable)},
				{Label: "Eye Color", Value: valueOr(person.EyeColor, notAvailable)},
				{Label: "Gender", Value: valueOr(person.Gender, notAvailable)},
				{Label: "Hair Color", Value: valueOr(person.HairColor, notAvailable)},
				{Label: "Skin Color", Value: valueOr(person.SkinColor, notAvailable)},
				{Label: "Home World", Value: valueOr(homeworld, notAvailable)},
			}),
		},
	}

	var refs []model.RefItem
	if conn := person.FilmConnection; conn != nil {
		for _, f := range conn.Films {
			if f == nil {
				continue
			}
			refs = append(refs, filmRef(&f.ListFilmFragment))
		}
	}
	if len(refs) > 0 {
		screen.Sections = append(screen.Sections, model.ReferenceSection("Appears In", refs))
	}
	return screen, nil
}

// loadFailed logs a fetch that produced nothing to show and wraps err in ErrUpstream.
func (s *screenService) loadFailed(route model.Route, err error) error {
	s.logger.Error("screen_load_failed",
		zap.String("screen", string(route.Screen)),
		zap.String("subject_id", route.ID),
		zap.String("outcome", swapi.Outcome(err)),
		zap.Error(err),
	)
	return fmt.Errorf("%w: %s: %w", ErrUpstream, route.Screen, err)
}

// partial logs GraphQL errors that came back alongside usable data.
func (s *screenService) partial(route model.Route, err error) {
	s.logger.Warn("screen_partial_response",
		zap.String("screen", string(route.Screen)),
		zap.String("subject_id", route.ID),
		zap.Int("graphql_errors", len(swapi.GraphQLErrors(err))),
		zap.Error(err),
	)
}

func filmRef(f *swapi.ListFilmFragment) model.RefItem {
	return model.NewRefItem(f.Id, valueOr(f.Title, ""), valueOr(f.ReleaseDate, ""), model.FilmRoute(f.Id))
}

func valueOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
